package provider

import (
	"fmt"
	"strings"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/models"
)

// Registry resolves provider names to their validator adapters. All
// adapters share one retrying HTTP client built from the configuration.
type Registry struct {
	validators map[string]Validator
}

// NewRegistry constructs the registry with all supported provider adapters.
func NewRegistry(cfg config.Providers, logger *logger.Logger) *Registry {
	logger.Info().Msg("creating provider registry...")

	client := newHTTPClient(cfg)

	return &Registry{
		validators: map[string]Validator{
			models.ProviderFacebook: NewFacebookValidator(client, cfg.Facebook, logger),
			models.ProviderTwitter:  NewTwitterValidator(client, cfg.Twitter, logger),
		},
	}
}

// Validator returns the adapter registered for the given provider name
// (case-insensitive). Returns an error matching [ErrUnsupportedProvider]
// when no adapter exists.
func (r *Registry) Validator(providerName string) (Validator, error) {
	validator, ok := r.validators[strings.ToLower(providerName)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, providerName)
	}

	return validator, nil
}
