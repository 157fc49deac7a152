package provider

import (
	"fmt"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-social-auth/1.0"

// newHTTPClient builds the shared resty client used by all provider
// adapters. Transient failures (transport errors and 5xx answers) are
// retried with exponential backoff per the configuration; 4xx rejections
// are final and never retried.
func newHTTPClient(cfg config.Providers) *resty.Client {
	return resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait * 8).
		SetHeader("User-Agent", userAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
}

// wrapTransportError maps a resty request error or a 5xx answer to
// [ErrProviderUnavailable], preserving the underlying cause.
func wrapTransportError(providerName string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrProviderUnavailable, providerName, err)
}

// wrapValidationError maps a provider-side rejection to
// [ErrValidationFailed] with a human-readable reason.
func wrapValidationError(providerName, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidationFailed, providerName, reason)
}
