package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex computes the SHA-256 digest of the given string and returns it
// hex-encoded. It is used to fingerprint social access tokens so that an
// issued app token can be correlated with the provider-side session without
// ever persisting the social token itself.
//
// Example usage:
//
//	fingerprint := utils.Sha256Hex(socialToken)
func Sha256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
