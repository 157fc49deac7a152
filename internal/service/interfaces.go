package service

import (
	"context"

	"github.com/akarpov/go-social-auth/internal/provider"
	"github.com/akarpov/go-social-auth/models"
)

// AuthService implements the social token exchange and the lifecycle of the
// resulting application tokens.
type AuthService interface {
	// Authenticate validates the social token with its provider, upserts
	// the user account, and issues a signed application token.
	Authenticate(ctx context.Context, request models.AuthRequest) (models.Token, error)

	// VerifyToken checks the signature, issuer and expiry of an application
	// token and confirms that its jti record is still present in the token
	// store. Returns ErrTokenRevoked for a well-formed token whose record
	// was deleted.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)

	// Revoke deletes the token record identified by jti, invalidating the
	// corresponding application token ahead of its expiry.
	Revoke(ctx context.Context, jti string) error
}

type UserService interface {
	GetUser(ctx context.Context, providerName, uid string) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ValidatorRegistry resolves provider names to validator adapters.
// Satisfied by *provider.Registry.
type ValidatorRegistry interface {
	Validator(providerName string) (provider.Validator, error)
}
