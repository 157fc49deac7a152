package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/store"
	"github.com/akarpov/go-social-auth/internal/utils"
	"github.com/akarpov/go-social-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It orchestrates the social token exchange: provider-side validation,
// account upsert, JWT issuance, and token store bookkeeping.
type authService struct {
	// registry resolves provider names to their validator adapters.
	registry ValidatorRegistry

	// userRepository persists accounts created from validated identities.
	userRepository store.UserRepository

	// tokenStore keeps the jti record of every issued application token.
	tokenStore store.TokenStore

	// tokenSignKey is the HMAC secret used to sign and verify application
	// JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// jtiGenerator produces the unique jti claim for every issued token.
	jtiGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given registry and
// storages, populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(registry ValidatorRegistry, userRepository store.UserRepository, tokenStore store.TokenStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		registry:       registry,
		userRepository: userRepository,
		tokenStore:     tokenStore,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		jtiGenerator:   utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Authenticate exchanges a social access token for an application JWT.
//
// The flow is:
//  1. Validate the social token with the named provider.
//  2. Upsert the user account keyed by (provider, uid).
//  3. Mint a signed JWT whose subject is "<provider>:<uid>" and whose
//     st_hash claim fingerprints the exchanged social token.
//  4. Record the token's jti in the token store for the token's lifetime.
//
// Returns the issued token or:
//   - ErrInvalidDataProvided if the provider name or token is empty.
//   - A wrapped provider error if validation is rejected or the provider is
//     unreachable (see provider.ErrValidationFailed, provider.ErrProviderUnavailable,
//     provider.ErrUnsupportedProvider).
//   - A wrapped storage error if the upsert or the token record save fails.
func (a *authService) Authenticate(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	providerName := strings.ToLower(strings.TrimSpace(request.Provider))
	if providerName == "" || request.Token == "" {
		log.Error().Str("provider", request.Provider).Msg("invalid authentication request")
		return models.Token{}, ErrInvalidDataProvided
	}

	validator, err := a.registry.Validator(providerName)
	if err != nil {
		log.Err(err).Str("provider", providerName).Msg("provider lookup failed")
		return models.Token{}, fmt.Errorf("provider lookup failed: %w", err)
	}

	identity, err := validator.Validate(ctx, request.Token)
	if err != nil {
		log.Err(err).Str("provider", providerName).Msg("social token validation failed")
		return models.Token{}, fmt.Errorf("social token validation failed: %w", err)
	}

	user, err := a.userRepository.UpsertUser(ctx, models.User{
		Provider: providerName,
		SocialID: identity.UID,
		Name:     identity.Name,
		Email:    identity.Email,
		Extra:    identity.Meta(),
	})
	if err != nil {
		log.Err(err).Str("provider", providerName).Str("uid", identity.UID).Msg("user upsert failed")
		return models.Token{}, fmt.Errorf("user upsert failed: %w", err)
	}

	token, err := a.mintToken(providerName, identity.UID, request.Token)
	if err != nil {
		log.Err(err).Str("provider", providerName).Str("uid", identity.UID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	record := models.TokenRecord{
		Provider:        providerName,
		UID:             identity.UID,
		SocialTokenHash: token.SocialTokenHash,
		IssuedAt:        token.IssuedAt.Unix(),
		ExpiresAt:       token.ExpiresAt.Unix(),
		Meta:            identity.Meta(),
	}
	if err := a.tokenStore.Save(ctx, token.ID, record, a.tokenDuration); err != nil {
		log.Err(err).Str("jti", token.ID).Msg("token record save failed")
		return models.Token{}, fmt.Errorf("token record save failed: %w", err)
	}

	log.Info().
		Str("provider", providerName).
		Str("uid", identity.UID).
		Int64("user_id", user.UserID).
		Str("jti", token.ID).
		Msg("application token issued")

	return token, nil
}

// VerifyToken validates a raw application JWT string.
//
// It delegates signature, issuer, and expiry checks to
// utils.ValidateAndParseJWTToken, then confirms that the token's jti record
// is still present in the token store. Any cryptographic or claim failure is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors; a missing jti record yields ErrTokenRevoked.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if _, err := a.tokenStore.Get(ctx, token.ID); err != nil {
		if errors.Is(err, store.ErrTokenRecordNotFound) {
			log.Debug().Str("jti", token.ID).Msg("token record absent, token treated as revoked")
			return models.Token{}, ErrTokenRevoked
		}
		log.Err(err).Str("jti", token.ID).Msg("token record lookup failed")
		return models.Token{}, fmt.Errorf("token record lookup failed: %w", err)
	}

	return token, nil
}

// Revoke deletes the token record stored under jti. Revoking an already
// absent record is not an error, matching the token store contract.
func (a *authService) Revoke(ctx context.Context, jti string) error {
	log := logger.FromContext(ctx)

	if jti == "" {
		return ErrInvalidDataProvided
	}

	if err := a.tokenStore.Delete(ctx, jti); err != nil {
		log.Err(err).Str("jti", jti).Msg("token record deletion failed")
		return fmt.Errorf("token record deletion failed: %w", err)
	}

	log.Info().Str("jti", jti).Msg("application token revoked")

	return nil
}

// mintToken assembles the claim set for a freshly validated identity and
// signs it. The subject is "<provider>:<uid>"; the st_hash claim carries the
// SHA-256 fingerprint of the exchanged social token.
func (a *authService) mintToken(providerName, uid, socialToken string) (models.Token, error) {
	now := time.Now()

	claims := models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.tokenIssuer,
			Subject:   providerName + ":" + uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenDuration)),
			ID:        a.jtiGenerator.Generate(),
		},
		Provider:        providerName,
		UID:             uid,
		SocialTokenHash: utils.Sha256Hex(socialToken),
	}

	return utils.GenerateJWTToken(claims, a.tokenSignKey)
}
