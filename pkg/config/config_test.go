package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PATH", "SERVER_PORT", "SERVER_HOST", "SESSION_SIGNING_KEY", "DB_LOG_LEVEL", "APP_ENV", "SHUTDOWN_TIMEOUT"} {
		unsetEnv(t, key)
	}

	cfg, err := Load("qads")
	require.NoError(t, err)

	assert.Equal(t, "qads", cfg.ServiceName)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "qads.db", cfg.DB.GetDSN())
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address())
	assert.Equal(t, logger.Warn, cfg.DB.LogLevel)
	assert.Len(t, cfg.Session.SigningKey, 32, "a random key is generated when none is configured")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "qads")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "qads")
	t.Setenv("DB_SSL_MODE", "require")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("SESSION_SIGNING_KEY", "fixed-key")

	cfg, err := Load("qads")
	require.NoError(t, err)

	assert.Equal(t, "host=db.internal port=6543 user=qads password=secret dbname=qads sslmode=require", cfg.DB.GetDSN())
	assert.Equal(t, 7, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, logger.Silent, cfg.DB.LogLevel)
	assert.Equal(t, []byte("fixed-key"), cfg.Session.SigningKey)

	for _, f := range cfg.LogConfig() {
		assert.NotEqual(t, "secret", f.String, "password must not be logged")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load("qads")
	assert.Error(t, err)
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("QADS_TEST_INT", "not-a-number")
	t.Setenv("QADS_TEST_DURATION", "soon")
	t.Setenv("QADS_TEST_LEVEL", "verbose")

	assert.Equal(t, 3, getEnvAsInt("QADS_TEST_INT", 3))
	assert.Equal(t, time.Second, getEnvAsDuration("QADS_TEST_DURATION", time.Second))
	assert.Equal(t, logger.Error, getEnvAsLogLevel("QADS_TEST_LEVEL", logger.Error))
}

// unsetEnv removes key for the duration of the test and restores it afterwards
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
