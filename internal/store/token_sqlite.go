package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/models"
)

const createTokensTable = `CREATE TABLE IF NOT EXISTS tokens (
    jti        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    expires_at INTEGER NOT NULL
);`

const (
	saveTokenRecord   = `REPLACE INTO tokens (jti, payload, expires_at) VALUES (?, ?, ?);`
	getTokenRecord    = `SELECT payload, expires_at FROM tokens WHERE jti = ?;`
	deleteTokenRecord = `DELETE FROM tokens WHERE jti = ?;`
	purgeTokenRecords = `DELETE FROM tokens WHERE expires_at < ?;`
)

// sqliteTokenStore is the SQLite-backed fallback implementation of
// [TokenStore], used when no Redis URL is configured. TTL is not native to
// SQLite, so expiry is stored as a Unix timestamp and enforced on read; the
// token janitor worker purges elapsed rows in the background.
type sqliteTokenStore struct {
	db     *sql.DB
	logger *logger.Logger

	// now is the clock used for expiry checks; replaceable in tests.
	now func() time.Time
}

// NewSQLiteTokenStore opens (creating if necessary) the SQLite database at
// cfg.SQLitePath and ensures the tokens table exists.
func NewSQLiteTokenStore(ctx context.Context, cfg config.Tokens, log *logger.Logger) (TokenStore, error) {
	if err := createLocalDBFileIfNotExists(cfg.SQLitePath); err != nil {
		log.Err(err).Str("func", "NewSQLiteTokenStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteTokenStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteTokenStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createTokensTable); err != nil {
		log.Err(err).Str("func", "NewSQLiteTokenStore").Msg("error creating tokens table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite fallback token store")

	return &sqliteTokenStore{
		db:     conn,
		logger: log,
		now:    time.Now,
	}, nil
}

func (s *sqliteTokenStore) Save(ctx context.Context, jti string, record models.TokenRecord, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling token record: %w", err)
	}

	expiresAt := s.now().Add(ttl).Unix()
	if _, err = s.db.ExecContext(ctx, saveTokenRecord, jti, payload, expiresAt); err != nil {
		log.Err(err).Str("func", "*sqliteTokenStore.Save").Msg("sqlite set failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) Get(ctx context.Context, jti string) (models.TokenRecord, error) {
	log := logger.FromContext(ctx)

	var payload []byte
	var expiresAt int64

	row := s.db.QueryRowContext(ctx, getTokenRecord, jti)
	if err := row.Scan(&payload, &expiresAt); err != nil {
		if isNoRows(err) {
			return models.TokenRecord{}, ErrTokenRecordNotFound
		}
		log.Err(err).Str("func", "*sqliteTokenStore.Get").Msg("sqlite get failed")
		return models.TokenRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// expired rows are treated as absent and removed eagerly
	if s.now().Unix() > expiresAt {
		if _, err := s.db.ExecContext(ctx, deleteTokenRecord, jti); err != nil {
			log.Err(err).Str("func", "*sqliteTokenStore.Get").Msg("sqlite delete of expired record failed")
		}
		return models.TokenRecord{}, ErrTokenRecordNotFound
	}

	var record models.TokenRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return models.TokenRecord{}, fmt.Errorf("unmarshaling token record: %w", err)
	}

	return record, nil
}

func (s *sqliteTokenStore) Delete(ctx context.Context, jti string) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, deleteTokenRecord, jti); err != nil {
		log.Err(err).Str("func", "*sqliteTokenStore.Delete").Msg("sqlite delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, purgeTokenRecords, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}

	return purged, nil
}

func (s *sqliteTokenStore) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
