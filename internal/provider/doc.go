// Package provider implements the social identity provider adapters.
//
// Each adapter validates a provider-issued access token against the
// provider's public API and maps the response to the neutral
// [models.Identity] shape consumed by the service layer. Adapters share a
// single resty HTTP client configured with timeouts and retry/backoff, so
// transient provider failures are absorbed before being reported as
// unavailability.
package provider
