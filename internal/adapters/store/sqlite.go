package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"strattonbot/migrations"

	_ "modernc.org/sqlite"
)

// NewDB opens the SQLite database at dbPath and applies pending migrations.
func NewDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite does not support concurrent writes
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := applyMigrations(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close database after migration failure")
		}
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("database ready")
	return db, nil
}

func applyMigrations(db *sqlx.DB) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create embed source driver: %w", err)
	}

	dbDriver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite3 database driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite3", dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// UserRegistry persists the set of users who ever talked to the bot.
type UserRegistry struct {
	db *sqlx.DB
}

func NewUserRegistry(db *sqlx.DB) *UserRegistry {
	return &UserRegistry{db: db}
}

// Register records the user if not yet known. Returns true when the user
// was newly created, false when they were already registered.
func (r *UserRegistry) Register(ctx context.Context, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, created_at) VALUES (?, ?) ON CONFLICT(user_id) DO NOTHING`,
		userID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to register user %d: %w", userID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

// ListAll returns every registered user ID in registration order.
func (r *UserRegistry) ListAll(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT user_id FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return ids, nil
}
