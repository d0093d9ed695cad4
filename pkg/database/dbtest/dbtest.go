// Package dbtest starts a throwaway PostgreSQL container for integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// StartPostgres runs postgres in a container and returns its connection settings.
// The container is terminated when the test ends.
func StartPostgres(t *testing.T) utils.DatabaseConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("reviews_test"),
		postgres.WithUsername("reviews"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return utils.DatabaseConfig{
		Host:     host,
		Port:     port.Port(),
		Name:     "reviews_test",
		User:     "reviews",
		Password: "password",
		SSLMode:  "disable",
		MaxConns: 4,
	}
}

// NewDB migrates a fresh container and returns a pool connected to it.
func NewDB(t *testing.T) database.PgxIface {
	t.Helper()

	cfg := StartPostgres(t)
	require.NoError(t, database.Migrate(cfg, zap.NewNop()))

	db, err := database.InitDB(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}
