package provider

import (
	"context"

	"github.com/akarpov/go-social-auth/models"
)

// Validator is the contract implemented by every social identity provider
// adapter.
type Validator interface {
	// Validate checks the social access token against the provider's API
	// and returns the identity it belongs to.
	//
	// A token the provider rejects produces an error matching
	// [ErrValidationFailed]; a provider that cannot be reached (after
	// retries) produces an error matching [ErrProviderUnavailable].
	Validate(ctx context.Context, socialToken string) (models.Identity, error)
}
