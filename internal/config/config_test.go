package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMustLoad_ValidConfig(t *testing.T) {
	configContent := `
env: test
storage_driver: redis
redis_connection:
  addressredis: "localhost:6379"
  db: 1
  max_retries: 3
  dial_timeout: 5s
  timeoutredis: 10s
http_server:
  addresshttp: ":8081"
  timeouthttp: 30s
  idle_timeout: 60s
provider:
  base_url: "https://api.aladhan.com/v1"
  method: 13
  timeout: 10s
  default_country: Turkey
`
	path := writeConfigFile(t, configContent)
	t.Setenv("CONFIG_PATH", path)

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, "localhost:6379", cfg.AddressRedis)
	assert.Equal(t, ":8081", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 13, cfg.Method)
	assert.Equal(t, "Turkey", cfg.DefaultCountry)
}

func TestMustLoad_Defaults(t *testing.T) {
	// Минимальный конфиг: значения ключей кеша должны подставиться из env-default
	path := writeConfigFile(t, "env: test\n")
	t.Setenv("CONFIG_PATH", path)

	cfg := MustLoad()

	assert.Equal(t, "prayer_times_", cfg.MonthlyPrefix)
	assert.Equal(t, "v2_", cfg.MonthlyVersion)
	assert.Equal(t, "weekly_prayer_times_", cfg.WeeklyPrefix)
	assert.Equal(t, "v1_", cfg.WeeklyVersion)
	assert.Equal(t, "last_prayer_times_backup", cfg.BackupKey)
	assert.Equal(t, "last_city_used", cfg.LastCityKey)
	assert.Equal(t, "user_location", cfg.LocationKey)
	assert.Equal(t, "selected_ezan", cfg.EzanKey)
	assert.Equal(t, "https://api.aladhan.com/v1", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "redis", cfg.StorageDriver)
}

func TestConfig_String(t *testing.T) {
	path := writeConfigFile(t, "env: test\n")
	t.Setenv("CONFIG_PATH", path)

	cfg := MustLoad()
	s := cfg.String()

	assert.Contains(t, s, "Env: test")
	assert.Contains(t, s, "BaseURL: https://api.aladhan.com/v1")
}
