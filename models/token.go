package models

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the claim set carried by every application JWT.
//
// On top of the standard registered claims (iss, sub, iat, exp, jti) it
// records which social provider vouched for the subject, the user's
// identifier at that provider, and a SHA-256 fingerprint of the social
// token that was exchanged. The fingerprint lets operators correlate an
// issued app token with the provider-side session without ever storing
// the social token itself.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Provider is the social network that validated the subject
	// ("facebook" or "twitter").
	Provider string `json:"provider"`

	// UID is the subject's identifier at the provider.
	UID string `json:"uid"`

	// SocialTokenHash is the hex-encoded SHA-256 digest of the social
	// access token presented during authentication.
	SocialTokenHash string `json:"st_hash"`
}

// Token wraps an application JWT with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [AuthClaims] for claim access. SignedString holds the compact
// serialized form of the token (header.payload.signature) ready to be
// transmitted in HTTP headers or response bodies.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// AuthClaims provides access to the application claim set.
	AuthClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// SubjectParts splits the "sub" claim ("<provider>:<uid>") into its
// provider and uid components. Returns an error if the claim is missing or
// not in the expected format.
func (t *Token) SubjectParts() (provider, uid string, err error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", "", fmt.Errorf("error extracting subject from token: %w", err)
	}

	parts := strings.SplitN(sub, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed subject claim: %q", sub)
	}

	return parts[0], parts[1], nil
}
