package models

import "time"

// Supported social identity providers. Provider names are always stored and
// compared in lower case.
const (
	ProviderFacebook = "facebook"
	ProviderTwitter  = "twitter"
)

// User represents an account created from a validated social identity.
// A user is uniquely identified by the (Provider, SocialID) pair; the
// internal UserID exists only at the persistence layer.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Provider is the social network that vouched for this identity
	// ("facebook" or "twitter").
	Provider string `json:"provider"`

	// SocialID is the user's identifier at the provider. Together with
	// Provider it forms the natural key of the account.
	SocialID string `json:"social_id"`

	// Name is the display name reported by the provider. May be empty for
	// providers that do not expose it.
	Name string `json:"name"`

	// Email is the e-mail address reported by the provider. May be empty;
	// providers only return it when the social token carries the scope.
	Email string `json:"email,omitempty"`

	// Extra holds any additional profile attributes returned by the
	// provider that do not map to a dedicated column (scopes, expiry, raw
	// payload fragments). Persisted as JSONB.
	Extra map[string]any `json:"extra,omitempty"`

	// CreatedAt is the timestamp when the account was first seen.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last successful authentication
	// that refreshed the profile.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserFilter holds optional criteria for listing users.
// Zero-valued fields are ignored when building the query.
type UserFilter struct {
	// Provider restricts the listing to a single identity provider.
	Provider string `json:"provider,omitempty"`

	// Limit caps the number of returned records. Zero means no limit.
	Limit int `json:"limit,omitempty"`
}
