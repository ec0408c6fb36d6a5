package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store using a postgres pool
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new postgres-backed profile store
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// WriteProfile creates or replaces the profile record for a user
func (s *PostgresStore) WriteProfile(ctx context.Context, p Profile) error {
	query := `
		INSERT INTO profiles (user_id, first_name, last_name, display_name, email, created_at, last_login, provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    display_name = EXCLUDED.display_name,
		    email = EXCLUDED.email,
		    last_login = EXCLUDED.last_login,
		    provider = EXCLUDED.provider
	`

	_, err := s.db.Exec(ctx, query,
		p.UserID,
		p.FirstName,
		p.LastName,
		p.DisplayName,
		p.Email,
		p.CreatedAt,
		p.LastLogin,
		p.Provider,
	)
	return err
}

// ReadProfile retrieves the profile record for a user
func (s *PostgresStore) ReadProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	query := `
		SELECT user_id, first_name, last_name, display_name, email, created_at, last_login, provider
		FROM profiles
		WHERE user_id = $1
	`

	var p Profile
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.DisplayName,
		&p.Email,
		&p.CreatedAt,
		&p.LastLogin,
		&p.Provider,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}

	return p, nil
}

// TouchLastLogin updates the last_login field of an existing profile
func (s *PostgresStore) TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	query := `
		UPDATE profiles
		SET last_login = $2
		WHERE user_id = $1
	`

	tag, err := s.db.Exec(ctx, query, userID, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
