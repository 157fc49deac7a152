// SPDX-License-Identifier: Apache-2.0

package provider

import "errors"

var (
	// ErrUnsupportedProvider is returned by the registry when no adapter is
	// registered for the requested provider name.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrValidationFailed is returned when the provider answers but rejects
	// the presented token, or when the response cannot be interpreted as a
	// valid identity.
	ErrValidationFailed = errors.New("provider validation failed")

	// ErrProviderUnavailable is returned when the provider cannot be
	// reached or keeps answering with server errors after all retries.
	ErrProviderUnavailable = errors.New("provider unavailable")
)
