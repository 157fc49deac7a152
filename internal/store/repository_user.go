package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertUser persists the account identified by (Provider, SocialID) and
// returns the fully populated [models.User] with server-assigned fields
// (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [upsertUser] query: an existing account is refreshed
// in place (name, email, extra) via ON CONFLICT, so a returning user ends a
// repeat authentication with its profile up to date instead of an error.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → wrapped; only possible under a
//     concurrent schema mismatch, never in the normal upsert path.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	extraJSON, err := json.Marshal(user.Extra)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: marshaling extra attributes")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, upsertUser, user.Provider, user.SocialID, user.Name, user.Email, extraJSON)

	// upsert user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, fmt.Errorf("%w: concurrent upsert conflict", ErrUserNotSaved)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindUser retrieves the account identified by (provider, socialID).
//
// Error handling:
//   - sql.ErrNoRows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUser(ctx context.Context, provider, socialID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUser, provider, socialID)

	// find user by natural key
	if err := row.Err(); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListUsers returns accounts matching the filter ordered by creation time,
// newest first. The query is built dynamically with squirrel so that only
// the populated filter fields contribute WHERE clauses.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.
		Select("user_id", "provider", "social_id", "name", "email", "extra", "created_at", "updated_at").
		From("users").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Provider != "" {
		builder = builder.Where(squirrel.Eq{"provider": filter.Provider})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var extraJSON []byte

	if err := row.Scan(&user.UserID, &user.Provider, &user.SocialID, &user.Name, &user.Email, &extraJSON, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, err
	}

	if len(extraJSON) > 0 {
		if err := json.Unmarshal(extraJSON, &user.Extra); err != nil {
			return models.User{}, fmt.Errorf("unmarshaling extra attributes: %w", err)
		}
	}

	return user, nil
}
