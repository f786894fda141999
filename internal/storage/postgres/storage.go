package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/domain/model"
	"github.com/polkiloo/kicktracker/internal/domain/repository"
)

const uniqueViolation = "23505"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type kickRepository struct {
	storage *Storage
}

// New connects to dsn and makes sure the schema exists.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Users returns the PostgreSQL user repository.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// Kicks returns the PostgreSQL kick repository.
func (s *Storage) Kicks() repository.KickRepository {
	return &kickRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            name TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS kicks (
            id UUID PRIMARY KEY,
            user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            occurred_at TIMESTAMPTZ NOT NULL,
            note TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_kicks_user_occurred ON kicks(user_id, occurred_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (id, email, password_hash, name, created_at)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id::text, email, password_hash, name, created_at FROM users WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT id::text, email, password_hash, name, created_at FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes the user; kicks follow through ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- KickRepository implementation ---

const kickColumns = `id::text, user_id::text, occurred_at, note, created_at`

func (r *kickRepository) Create(ctx context.Context, kick model.Kick) (*model.Kick, error) {
	const query = `INSERT INTO kicks (id, user_id, occurred_at, note, created_at)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if err := r.storage.pool.QueryRow(ctx, query, kick.ID, kick.UserID, kick.Timestamp, kick.Note, kick.CreatedAt).Scan(&kick.CreatedAt); err != nil {
		return nil, err
	}
	return &kick, nil
}

func (r *kickRepository) ListByOwner(ctx context.Context, ownerID string, window *model.TimeWindow) ([]model.Kick, error) {
	if window == nil {
		const query = `SELECT ` + kickColumns + ` FROM kicks WHERE user_id=$1 ORDER BY occurred_at DESC`
		return r.list(ctx, query, ownerID)
	}
	const query = `SELECT ` + kickColumns + ` FROM kicks
                   WHERE user_id=$1 AND occurred_at >= $2 AND occurred_at < $3
                   ORDER BY occurred_at DESC`
	return r.list(ctx, query, ownerID, window.From, window.To)
}

func (r *kickRepository) ListByOwnerAscending(ctx context.Context, ownerID string) ([]model.Kick, error) {
	const query = `SELECT ` + kickColumns + ` FROM kicks WHERE user_id=$1 ORDER BY occurred_at ASC`
	return r.list(ctx, query, ownerID)
}

func (r *kickRepository) list(ctx context.Context, query string, args ...any) ([]model.Kick, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Kick, 0)
	for rows.Next() {
		var k model.Kick
		if err := rows.Scan(&k.ID, &k.UserID, &k.Timestamp, &k.Note, &k.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete only matches rows owned by ownerID, so foreign kicks look missing.
func (r *kickRepository) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM kicks WHERE id=$1 AND user_id=$2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *kickRepository) ReplaceAll(ctx context.Context, ownerID string, kicks []model.Kick) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM kicks WHERE user_id=$1`, ownerID); err != nil {
			return err
		}
		const insert = `INSERT INTO kicks (id, user_id, occurred_at, note, created_at) VALUES ($1, $2, $3, $4, $5)`
		for _, k := range kicks {
			if _, err := tx.Exec(ctx, insert, k.ID, ownerID, k.Timestamp, k.Note, k.CreatedAt); err != nil {
				return err
			}
		}
		r.storage.logger.Debug("kick history replaced", slog.String("owner", ownerID), slog.Int("count", len(kicks)))
		return nil
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
