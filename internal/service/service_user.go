package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/store"
	"github.com/akarpov/go-social-auth/models"
)

// userService is the concrete implementation of UserService. It exposes
// read access to accounts created from validated social identities.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the account identified by (provider, uid).
//
// Returns ErrInvalidDataProvided when either key component is empty, or a
// wrapped storage error from the lookup (see store.ErrNoUserWasFound).
func (s *userService) GetUser(ctx context.Context, providerName, uid string) (models.User, error) {
	log := logger.FromContext(ctx)

	if providerName == "" || uid == "" {
		log.Error().Str("provider", providerName).Str("uid", uid).Msg("invalid user lookup request")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUser(ctx, strings.ToLower(providerName), uid)
	if err != nil {
		log.Err(err).Str("provider", providerName).Str("uid", uid).Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	return user, nil
}

// ListUsers returns accounts matching the filter, newest first.
func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	filter.Provider = strings.ToLower(filter.Provider)
	if filter.Limit < 0 {
		return nil, ErrInvalidDataProvided
	}

	users, err := s.userRepository.ListUsers(ctx, filter)
	if err != nil {
		log.Err(err).Str("provider", filter.Provider).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
