// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"time"

	"github.com/akarpov/go-social-auth/internal/provider"
	"github.com/akarpov/go-social-auth/models"
)

// ─────────────────────────────────────────────
// Mock: provider.Validator + ValidatorRegistry
// ─────────────────────────────────────────────

type mockValidator struct {
	validateFn func(ctx context.Context, socialToken string) (models.Identity, error)
}

func (m *mockValidator) Validate(ctx context.Context, socialToken string) (models.Identity, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, socialToken)
	}
	return models.Identity{}, nil
}

type mockRegistry struct {
	validatorFn func(providerName string) (provider.Validator, error)
}

func (m *mockRegistry) Validator(providerName string) (provider.Validator, error) {
	if m.validatorFn != nil {
		return m.validatorFn(providerName)
	}
	return &mockValidator{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	upsertFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, provider, socialID string) (models.User, error)
	listFn   func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

func (m *mockUserRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUser(ctx context.Context, provider, socialID string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, provider, socialID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.TokenStore
// ─────────────────────────────────────────────

type mockTokenStore struct {
	saveFn   func(ctx context.Context, jti string, record models.TokenRecord, ttl time.Duration) error
	getFn    func(ctx context.Context, jti string) (models.TokenRecord, error)
	deleteFn func(ctx context.Context, jti string) error
	purgeFn  func(ctx context.Context) (int64, error)
}

func (m *mockTokenStore) Save(ctx context.Context, jti string, record models.TokenRecord, ttl time.Duration) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, jti, record, ttl)
	}
	return nil
}

func (m *mockTokenStore) Get(ctx context.Context, jti string) (models.TokenRecord, error) {
	if m.getFn != nil {
		return m.getFn(ctx, jti)
	}
	return models.TokenRecord{}, nil
}

func (m *mockTokenStore) Delete(ctx context.Context, jti string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, jti)
	}
	return nil
}

func (m *mockTokenStore) PurgeExpired(ctx context.Context) (int64, error) {
	if m.purgeFn != nil {
		return m.purgeFn(ctx)
	}
	return 0, nil
}

func (m *mockTokenStore) Close() error { return nil }

var errStorage = errors.New("storage error")
