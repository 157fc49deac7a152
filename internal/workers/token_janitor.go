package workers

import (
	"context"
	"time"

	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/internal/store"
)

// tokenJanitor periodically purges expired token records from the token
// store. It matters only for backends without native TTL support (SQLite);
// for Redis each purge is a cheap no-op.
type tokenJanitor struct {
	tokenStore store.TokenStore
	interval   time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

func newTokenJanitor(tokenStore store.TokenStore, interval time.Duration, logger *logger.Logger) *tokenJanitor {
	return &tokenJanitor{
		tokenStore: tokenStore,
		interval:   interval,
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the purge loop in its own goroutine and returns immediately.
func (j *tokenJanitor) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel

	j.logger.Info().Dur("interval", j.interval).Msg("token janitor started")

	go func() {
		defer close(j.done)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.purge(ctx)
			}
		}
	}()
}

// Stop halts the purge loop and waits for the current iteration to finish.
func (j *tokenJanitor) Stop() {
	if j.cancel == nil {
		return
	}

	j.cancel()
	<-j.done
	j.logger.Info().Msg("token janitor stopped")
}

func (j *tokenJanitor) purge(ctx context.Context) {
	purged, err := j.tokenStore.PurgeExpired(ctx)
	if err != nil {
		j.logger.Err(err).Msg("expired token purge failed")
		return
	}

	if purged > 0 {
		j.logger.Info().Int64("purged", purged).Msg("expired token records removed")
	}
}
