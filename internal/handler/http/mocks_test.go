// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"testing"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/service"
	"github.com/akarpov/go-social-auth/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	authenticateFn func(ctx context.Context, request models.AuthRequest) (models.Token, error)
	verifyTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	revokeFn       func(ctx context.Context, jti string) error
}

func (m *mockAuthService) Authenticate(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	return m.authenticateFn(ctx, request)
}

func (m *mockAuthService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.verifyTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Revoke(ctx context.Context, jti string) error {
	return m.revokeFn(ctx, jti)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getUserFn   func(ctx context.Context, providerName, uid string) (models.User, error)
	listUsersFn func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, providerName, uid string) (models.User, error) {
	return m.getUserFn(ctx, providerName, uid)
}

func (m *mockUserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.listUsersFn(ctx, filter)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil mocks
// are left out so an unexpected call panics loudly.
func newTestHandler(t *testing.T, auth service.AuthService, users service.UserService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		UserService:    users,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop())
}
