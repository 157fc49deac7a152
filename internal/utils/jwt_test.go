// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"testing"
	"time"

	"github.com/akarpov/go-social-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "auth_service"
)

func testClaims(ttl time.Duration) models.AuthClaims {
	now := time.Now()
	return models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "facebook:12345",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        "jti-1",
		},
		Provider:        "facebook",
		UID:             "12345",
		SocialTokenHash: Sha256Hex("social-token"),
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testClaims(time.Hour), testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "facebook", token.Provider)
	assert.Equal(t, "12345", token.UID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	claims := testClaims(time.Hour)

	_, err := GenerateJWTToken(claims, "")
	require.Error(t, err)

	noIssuer := claims
	noIssuer.Issuer = ""
	_, err = GenerateJWTToken(noIssuer, testSignKey)
	require.Error(t, err)

	noJTI := claims
	noJTI.ID = ""
	_, err = GenerateJWTToken(noJTI, testSignKey)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testClaims(time.Hour), testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, "jti-1", parsed.ID)
	assert.Equal(t, "facebook", parsed.Provider)
	assert.Equal(t, "12345", parsed.UID)
	assert.Equal(t, Sha256Hex("social-token"), parsed.SocialTokenHash)

	provider, uid, err := parsed.SubjectParts()
	require.NoError(t, err)
	assert.Equal(t, "facebook", provider)
	assert.Equal(t, "12345", uid)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testClaims(time.Hour), testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-key", testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testClaims(time.Hour), testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testClaims(-time.Minute), testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}
