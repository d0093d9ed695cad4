package database

import (
	"errors"
	"fmt"
	"strings"

	"movie-reviews/migrations"
	"movie-reviews/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// Migrate applies every pending up migration from the embedded schema files.
// It opens its own connection, so the application pool is left untouched.
func Migrate(config utils.DatabaseConfig, logger *zap.Logger) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, MigrateURL(config.DSN()))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Database schema up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("Database migrated", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}

// MigrateURL rewrites a postgres:// DSN to the pgx5:// scheme the migrate driver registers.
func MigrateURL(dsn string) string {
	return "pgx5://" + strings.TrimPrefix(dsn, "postgres://")
}
