package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "hotel"
password = "secret"
dbname = "hotel"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 2

[logs]
level = "debug"

[hotel]
name = "Puente Hotel"
currency_symbol = "ARS"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "ARS", cfg.Hotel.CurrencySymbol)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "host=db port=5433 user=hotel password=secret dbname=hotel sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PMS_DB_PASSWORD", "from-env")
	t.Setenv("PMS_HTTP_PORT", "7000")

	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
}

func TestLoad_InvalidPort(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nhttp_port = 70000\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_ClientSectionDoesNotBlockServer(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample+"\n[client]\ntimeout = 0\n"))
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.Client.Validate(), ErrInvalidConfig)
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, Default().Client.Validate())
	assert.ErrorIs(t, ClientConfig{Timeout: 5}.Validate(), ErrInvalidConfig)
}
