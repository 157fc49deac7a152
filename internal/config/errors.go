// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrNoTokenSignKey is returned by validation when no JWT signing key
	// has been provided by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not specified")

	// ErrNoDatabaseDSN is returned by validation when the relational
	// database DSN is missing.
	ErrNoDatabaseDSN = errors.New("database DSN is not specified")

	// ErrInvalidTokenDuration is returned when the merged token duration is
	// zero or negative.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
)
