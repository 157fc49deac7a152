package models

// Identity is the provider-side view of a user returned by a successful
// social token validation. UID is the only mandatory field; everything else
// depends on what the provider exposes for the presented token.
type Identity struct {
	// UID is the user's identifier at the provider. Always non-empty for a
	// successfully validated token.
	UID string `json:"uid"`

	// Name is the display name reported by the provider.
	Name string `json:"name,omitempty"`

	// Email is the e-mail address reported by the provider, when the token
	// carries the corresponding scope.
	Email string `json:"email,omitempty"`

	// ExpiresAt is the Unix timestamp at which the social token expires,
	// when the provider reports it. Zero means unknown.
	ExpiresAt int64 `json:"expires_at,omitempty"`

	// Scopes lists the permissions granted to the social token, when the
	// provider reports them.
	Scopes []string `json:"scopes,omitempty"`

	// Raw preserves the provider's response payload for auditing and for
	// fields this service does not model explicitly.
	Raw map[string]any `json:"raw,omitempty"`
}

// Meta returns the identity attributes that are stored alongside an issued
// token record: everything except the UID, which is recorded separately.
func (i Identity) Meta() map[string]any {
	meta := make(map[string]any, 4)
	if i.Name != "" {
		meta["name"] = i.Name
	}
	if i.Email != "" {
		meta["email"] = i.Email
	}
	if i.ExpiresAt != 0 {
		meta["expires_at"] = i.ExpiresAt
	}
	if len(i.Scopes) > 0 {
		meta["scopes"] = i.Scopes
	}

	return meta
}
