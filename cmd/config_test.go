package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"fooddelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults when the env file is missing", func(t *testing.T) {
		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "*/10 * * * * *", cfg.LoyaltyJobSchedule)
		assert.Equal(t, 50, cfg.LoyaltyBatchSize)
	})

	t.Run("environment wins over the env file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=from_file\nHTTP_PORT=9000\n"), 0o600))
		t.Setenv("HTTP_PORT", "9100")
		t.Setenv("DB_NAME", "")
		require.NoError(t, os.Unsetenv("DB_NAME"))

		cfg, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "9100", cfg.HTTPPort)
		assert.Equal(t, "from_file", cfg.DBName)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Setenv("LOYALTY_BATCH_SIZE", "many")

		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		assert.Error(t, err)
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "orders", DBSslMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=orders sslmode=disable", cfg.DSN())
}
