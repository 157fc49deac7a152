package models

// AuthRequest is the body of POST /api/auth/authenticate.
type AuthRequest struct {
	// Provider names the social network that issued Token
	// ("facebook" or "twitter", case-insensitive).
	Provider string `json:"provider"`

	// Token is the social access token to validate and exchange.
	Token string `json:"token"`
}

// AuthResponse is returned by a successful authentication. AppToken is the
// compact JWS string; Claims echoes the claim set embedded in it so clients
// do not need to decode the token themselves.
type AuthResponse struct {
	AppToken string     `json:"app_token"`
	Claims   AuthClaims `json:"claims"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VersionResponse is the body of GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
}

// UsersResponse is the body of GET /api/users. Length duplicates len(Users)
// so clients can validate the payload without iterating it.
type UsersResponse struct {
	Users  []User `json:"users"`
	Length int    `json:"length"`
}
