package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testConnectionString returns a PostgreSQL connection string with CI/local
// environment detection. In CI (when CI_DATABASE_URL is set) it connects to
// the external service container; locally it starts a testcontainer.
func testConnectionString(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return ciDatabaseURL
	}

	t.Log("Using testcontainers for PostgreSQL")
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

func TestNewClientBootstrapsSchemaAndMigrations(t *testing.T) {
	ctx := context.Background()

	cfg := Config{
		DatabaseURL:     testConnectionString(t),
		Schema:          "client_test_schema",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.DB().PingContext(ctx))

	// Migrations created the domain tables inside the configured schema.
	var count int
	err = client.DB().QueryRowContext(ctx, `
		SELECT count(*) FROM information_schema.tables
		WHERE table_schema = $1
		  AND table_name IN ('capture_session', 'capture_image', 'schedule_event', 'day_snapshot', 'schedule_notification')`,
		cfg.Schema,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Startup is idempotent.
	second, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	_ = second.Close()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestAddSearchPath(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@localhost:5432/db?search_path=s1",
		AddSearchPath("postgres://u:p@localhost:5432/db", "s1"))
	assert.Equal(t,
		"postgres://u:p@localhost:5432/db?sslmode=disable&search_path=s1",
		AddSearchPath("postgres://u:p@localhost:5432/db?sslmode=disable", "s1"))
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		DatabaseURL:  "postgres://u:p@localhost:5432/db",
		Schema:       "schedule_ingest",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing url", func(c *Config) { c.DatabaseURL = "" }, true},
		{"missing schema", func(c *Config) { c.Schema = "" }, true},
		{"schema with injection", func(c *Config) { c.Schema = "bad; DROP TABLE" }, true},
		{"schema with uppercase", func(c *Config) { c.Schema = "Schedule" }, true},
		{"zero max open conns", func(c *Config) { c.MaxOpenConns = 0 }, true},
		{"negative idle conns", func(c *Config) { c.MaxIdleConns = -1 }, true},
		{"idle exceeds open", func(c *Config) { c.MaxIdleConns = 20 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DATABASE_URL", "DB_SCHEMA",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}
	clearEnv := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	t.Cleanup(clearEnv)

	t.Run("missing DATABASE_URL", func(t *testing.T) {
		clearEnv()
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "schedule_ingest", cfg.Schema)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnv()
		os.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
		os.Setenv("DB_SCHEMA", "ingest_test")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")
		os.Setenv("DB_MAX_IDLE_CONNS", "20")
		os.Setenv("DB_CONN_MAX_LIFETIME", "1h")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "ingest_test", cfg.Schema)
		assert.Equal(t, 50, cfg.MaxOpenConns)
		assert.Equal(t, 20, cfg.MaxIdleConns)
		assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
	})

	t.Run("invalid pool size", func(t *testing.T) {
		clearEnv()
		os.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
		os.Setenv("DB_MAX_OPEN_CONNS", "not_a_number")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_MAX_OPEN_CONNS")
	})

	t.Run("invalid duration", func(t *testing.T) {
		clearEnv()
		os.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")
		os.Setenv("DB_CONN_MAX_LIFETIME", "soon")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_CONN_MAX_LIFETIME")
	})
}
