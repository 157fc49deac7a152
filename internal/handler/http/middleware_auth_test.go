// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akarpov/go-social-auth/internal/service"
	"github.com/akarpov/go-social-auth/internal/store"
	"github.com/akarpov/go-social-auth/internal/utils"
	"github.com/akarpov/go-social-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextRecorder is a terminal handler that records whether it was reached and
// what claims the middleware stored in the context.
type nextRecorder struct {
	called bool
	claims models.AuthClaims
	ok     bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.claims, n.ok = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid-token", tokenString)
			return stubToken("valid-token", "jti-1"), nil
		},
	}
	h := newTestHandler(t, auth, nil)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	require.True(t, next.ok)
	assert.Equal(t, "facebook", next.claims.Provider)
	assert.Equal(t, "jti-1", next.claims.ID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifyErr  error
		wantStatus int
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "no token part", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer t", verifyErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer t", verifyErr: service.ErrTokenRevoked, wantStatus: http.StatusUnauthorized},
		{name: "verification failure", header: "Bearer t", verifyErr: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				verifyTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.verifyErr
				},
			}
			h := newTestHandler(t, auth, nil)

			next := &nextRecorder{}
			req := httptest.NewRequest(http.MethodGet, "/api/user/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next.handler()).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, next.called)
		})
	}
}

// TestAuthMiddleware_StoreOutageIsNot401 verifies that a token store failure
// during verification surfaces as 500: the presented token may still be
// valid, so the client must not be told to discard it.
func TestAuthMiddleware_StoreOutageIsNot401(t *testing.T) {
	auth := &mockAuthService{
		verifyTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, fmt.Errorf("token record lookup failed: %w", store.ErrExecutingStatement)
		},
	}
	h := newTestHandler(t, auth, nil)

	next := &nextRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/", nil)
	req.Header.Set("Authorization", "Bearer still-valid-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, next.called)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	require.ErrorIs(t, err, ErrEmptyToken)
}
