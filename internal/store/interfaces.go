package store

import (
	"context"
	"time"

	"github.com/akarpov/go-social-auth/models"
)

// UserRepository is the data-access contract for user accounts created from
// validated social identities.
type UserRepository interface {
	// UpsertUser inserts the user identified by (Provider, SocialID) or,
	// when the account already exists, refreshes its profile fields.
	// Returns the canonical persisted record.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)

	// FindUser retrieves the account identified by (provider, socialID).
	// Returns ErrNoUserWasFound when no such account exists.
	FindUser(ctx context.Context, provider, socialID string) (models.User, error)

	// ListUsers returns accounts matching the filter, newest first.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// TokenStore keeps the server-side record of every issued application token,
// keyed by the token's jti claim. A token is valid only while its record is
// present; deleting the record revokes the token.
type TokenStore interface {
	// Save persists the record under jti with the given time-to-live.
	Save(ctx context.Context, jti string, record models.TokenRecord, ttl time.Duration) error

	// Get retrieves the record stored under jti.
	// Returns ErrTokenRecordNotFound when the record is absent or expired.
	Get(ctx context.Context, jti string) (models.TokenRecord, error)

	// Delete removes the record stored under jti, revoking the token.
	// Deleting an absent record is not an error.
	Delete(ctx context.Context, jti string) error

	// PurgeExpired removes records whose TTL elapsed and reports how many
	// were removed. Backends with native TTL support may return (0, nil).
	PurgeExpired(ctx context.Context) (int64, error)

	// Close releases the underlying connection or file handle.
	Close() error
}
