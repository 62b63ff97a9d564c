// Package testdb opens migrated databases for tests: an in-memory SQLite
// database for fast tests and a disposable PostgreSQL container for the
// integration suites.
package testdb

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// NewSQLite returns a fresh in-memory database with the full schema. Each
// call gets its own database.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := postgres.Open(postgres.Config{
		Driver:     postgres.DriverSQLite,
		SQLitePath: "file::memory:",
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Container is a running PostgreSQL instance with the schema migrated.
type Container struct {
	container *pgcontainer.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres starts postgres:15-alpine. It skips the calling test when no
// container provider is available.
func StartPostgres(t *testing.T) *Container {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := postgres.Open(postgres.Config{
		Driver:       postgres.DriverPostgres,
		Host:         host,
		Port:         port.Port(),
		User:         "testuser",
		Password:     "testpass",
		Name:         "testdb",
		SSLMode:      "disable",
		MaxOpenConns: 10,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return &Container{container: container, DB: db}
}

// Truncate empties every table between tests.
func (c *Container) Truncate() error {
	return c.DB.Exec(`TRUNCATE TABLE users, vendor_profiles, rider_profiles,
		delivery_agency_profiles, products, orders, order_lines,
		order_status_history, deliveries, disputes`).Error
}

func (c *Container) Terminate() error {
	if c == nil || c.container == nil {
		return nil
	}
	return c.container.Terminate(context.Background())
}
