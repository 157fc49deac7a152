package utils

import (
	"errors"
	"fmt"

	"github.com/akarpov/go-social-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken signs the given claim set with HMAC-SHA256.
//
// The claims are expected to be fully populated by the caller: issuer,
// subject, issue/expiry timestamps, jti, and the application-specific
// provider/uid/st_hash fields. The function only validates that the fields
// required for a verifiable token are present before signing.
//
// Parameters:
//
//	claims  - the complete application claim set to embed in the token
//	signKey - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if the claims are incomplete or signing fails
func GenerateJWTToken(claims models.AuthClaims, signKey string) (models.Token, error) {
	if signKey == "" || claims.Issuer == "" || claims.ExpiresAt == nil || claims.ID == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, AuthClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Presence of the jti, provider, and uid claims
//
// Parameters:
//
//	tokenString   - the raw signed JWT string to validate and parse
//	tokenSignKey  - secret key used to verify the token signature
//	tokenIssuer   - expected issuer value to validate against the iss claim
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object and the extracted claims
//	error        - non-nil if validation fails or required claims are missing
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	token, ok := parsed.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected claims type in parsed token")
	}

	if token.ID == "" {
		return models.Token{}, errors.New("missing jti claim")
	}
	if token.Provider == "" || token.UID == "" {
		return models.Token{}, errors.New("missing provider/uid claims")
	}

	token.Token = parsed
	token.SignedString = tokenString

	return *token, nil
}
