package store

const (
	upsertUser = `INSERT INTO users (provider, social_id, name, email, extra)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (provider, social_id)
    DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, extra = EXCLUDED.extra, updated_at = now()
    RETURNING user_id, provider, social_id, name, email, extra, created_at, updated_at;`

	findUser = `SELECT user_id, provider, social_id, name, email, extra, created_at, updated_at
    FROM users
    WHERE provider = $1 AND social_id = $2;`
)
