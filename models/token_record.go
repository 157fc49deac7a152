package models

// TokenRecord is the server-side state kept for every issued application
// token, keyed by the token's jti claim. Its presence in the token store is
// what makes an app token acceptable: deleting the record revokes the token
// ahead of its cryptographic expiry.
type TokenRecord struct {
	// Provider is the social network that vouched for the token's subject.
	Provider string `json:"provider"`

	// UID is the subject's identifier at the provider.
	UID string `json:"uid"`

	// SocialTokenHash is the hex-encoded SHA-256 digest of the social token
	// that was exchanged for this app token.
	SocialTokenHash string `json:"st_hash"`

	// IssuedAt is the Unix timestamp at which the app token was minted.
	IssuedAt int64 `json:"issued_at"`

	// ExpiresAt is the Unix timestamp at which the app token expires.
	ExpiresAt int64 `json:"expires_at"`

	// Meta carries auxiliary identity attributes captured at issuance time
	// (name, email, scopes, provider-side expiry).
	Meta map[string]any `json:"meta,omitempty"`
}
