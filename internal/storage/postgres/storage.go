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

	domainErrors "github.com/greenloop/cleanearth/internal/domain/errors"
	"github.com/greenloop/cleanearth/internal/domain/model"
	"github.com/greenloop/cleanearth/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage. Narrowed so
// tests can substitute a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
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

type activityRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
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

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Activities() repository.ActivityRepository {
	return &activityRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            points BIGINT NOT NULL DEFAULT 0,
            total_cleanups BIGINT NOT NULL DEFAULT 0,
            total_waste DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cleanup_activities (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            location TEXT NOT NULL,
            waste_collected TEXT NOT NULL,
            waste_kg DOUBLE PRECISION NOT NULL,
            before_photo TEXT NOT NULL,
            after_photo TEXT NOT NULL,
            points_earned BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_cleanups_user ON cleanup_activities(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_users_points ON users(points DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrDuplicateEmail
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, points, total_cleanups, total_waste, created_at
                   FROM users WHERE email=$1`
	return r.scanOne(ctx, query, email)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, points, total_cleanups, total_waste, created_at
                   FROM users WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *userRepository) scanOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Points, &u.TotalCleanups, &u.TotalWaste, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Rank(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT (SELECT COUNT(*) FROM users WHERE points > u.points) + 1
                   FROM users u WHERE u.id=$1`
	var rank int
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&rank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	return rank, nil
}

func (r *userRepository) ListByPoints(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name, email, password_hash, points, total_cleanups, total_waste, created_at
                   FROM users ORDER BY points DESC, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Points, &u.TotalCleanups, &u.TotalWaste, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- ActivityRepository implementation ---

func (r *activityRepository) CreateWithStats(ctx context.Context, activity *model.CleanupActivity) (*model.CleanupActivity, error) {
	out := *activity
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO cleanup_activities
                        (user_id, location, waste_collected, waste_kg, before_photo, after_photo, points_earned)
                        VALUES ($1, $2, $3, $4, $5, $6, $7)
                        RETURNING id, created_at`
		err := tx.QueryRow(ctx, insert,
			activity.UserID, activity.Location, activity.WasteCollected, activity.WasteKg,
			activity.BeforePhoto, activity.AfterPhoto, activity.PointsEarned,
		).Scan(&out.ID, &out.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const updateStats = `UPDATE users
                             SET points = points + $1,
                                 total_cleanups = total_cleanups + 1,
                                 total_waste = total_waste + $2
                             WHERE id=$3`
		tag, err := tx.Exec(ctx, updateStats, activity.PointsEarned, activity.WasteKg, activity.UserID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *activityRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]model.CleanupActivity, error) {
	const query = `SELECT id, user_id, location, waste_collected, waste_kg, before_photo, after_photo, points_earned, created_at
                   FROM cleanup_activities WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	return r.list(ctx, query, userID, limit)
}

func (r *activityRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.CleanupActivity, error) {
	const query = `SELECT id, user_id, location, waste_collected, waste_kg, before_photo, after_photo, points_earned, created_at
                   FROM cleanup_activities
                   WHERE user_id=$1 AND created_at >= $2 AND created_at < $3
                   ORDER BY created_at`
	return r.list(ctx, query, userID, from, to)
}

func (r *activityRepository) ListPhotoNames(ctx context.Context) ([]string, error) {
	const query = `SELECT before_photo, after_photo FROM cleanup_activities`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var before, after string
		if err := rows.Scan(&before, &after); err != nil {
			return nil, err
		}
		names = append(names, before, after)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *activityRepository) list(ctx context.Context, query string, args ...any) ([]model.CleanupActivity, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CleanupActivity
	for rows.Next() {
		var a model.CleanupActivity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Location, &a.WasteCollected, &a.WasteKg, &a.BeforePhoto, &a.AfterPhoto, &a.PointsEarned, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
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

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
