package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"Vesselcalc/internal/calc/vessel"

	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       SERIAL PRIMARY KEY,
	login    TEXT NOT NULL UNIQUE,
	email    TEXT NOT NULL,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS vessels (
	id         SERIAL PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	input      JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS vessels_user_id ON vessels (user_id);
`

// uniqueViolation is the Postgres error code of a duplicate key.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Open connects to dsn and checks the connection. A DSN without sslmode
// gets sslmode=require.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if !strings.Contains(dsn, "sslmode=") {
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "sslmode=require"
		} else {
			dsn += " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return 0, ErrConflict
	}
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveVessel(ctx context.Context, userID int, name string, in vessel.Input) (SavedVessel, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return SavedVessel{}, err
	}
	s := SavedVessel{UserID: userID, Name: name, Input: in}
	query := "INSERT INTO vessels (user_id, name, input) VALUES ($1, $2, $3) RETURNING id, created_at"
	if err := r.db.QueryRowContext(ctx, query, userID, name, raw).Scan(&s.ID, &s.CreatedAt); err != nil {
		return SavedVessel{}, err
	}
	return s, nil
}

func (r *PostgresRepository) ListVessels(ctx context.Context, userID int) ([]SavedVessel, error) {
	query := "SELECT id, user_id, name, input, created_at FROM vessels WHERE user_id=$1 ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SavedVessel{}
	for rows.Next() {
		s, err := scanVessel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetVessel(ctx context.Context, userID, id int) (SavedVessel, error) {
	query := "SELECT id, user_id, name, input, created_at FROM vessels WHERE id=$1 AND user_id=$2"
	s, err := scanVessel(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return SavedVessel{}, ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) DeleteVessel(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM vessels WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVessel(row scanner) (SavedVessel, error) {
	var (
		s   SavedVessel
		raw []byte
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &raw, &s.CreatedAt); err != nil {
		return SavedVessel{}, err
	}
	if err := json.Unmarshal(raw, &s.Input); err != nil {
		return SavedVessel{}, fmt.Errorf("decode vessel %d: %w", s.ID, err)
	}
	return s, nil
}
