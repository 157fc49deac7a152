package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
)

// Storages aggregates all persistence backends used by the application:
// the relational user repository and the issued-token store.
type Storages struct {
	UserRepository UserRepository
	TokenStore     TokenStore

	db *DB
}

// NewStorages connects every configured backend, applies pending schema
// migrations, and returns the ready-to-use aggregate.
//
// Backend selection for the token store follows the configuration: Redis
// when a URL is provided, the local SQLite database otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting user database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating user database: %w", err)
	}

	var tokenStore TokenStore
	if cfg.Tokens.RedisURL != "" {
		tokenStore, err = NewRedisTokenStore(ctx, cfg.Tokens, log)
	} else {
		tokenStore, err = NewSQLiteTokenStore(ctx, cfg.Tokens, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating token store: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TokenStore:     tokenStore,
		db:             db,
	}, nil
}

// Ping verifies that the relational database is still reachable. Used by
// the gRPC health service.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("no database connection")
	}

	return s.db.PingContext(ctx)
}

// Close releases all storage connections. Errors are joined so that a
// failure closing one backend does not hide the others.
func (s *Storages) Close() error {
	var errs error

	if s.TokenStore != nil {
		errs = errors.Join(errs, s.TokenStore.Close())
	}
	if s.db != nil {
		errs = errors.Join(errs, s.db.Close())
	}

	return errs
}
