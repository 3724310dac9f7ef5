package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.False(t, cfg.Server.DevMode)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "yeqown", cfg.QR.Engine)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PortEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Listen)
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "qrgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen: ":7000"
  dev_mode: true
logging:
  level: warn
qr:
  engine: skip2
`), 0o600))

	t.Setenv("QRGEN_LOGGING_LEVEL", "error")
	t.Setenv("QRGEN_SERVER_MAX_BODY_BYTES", "2048")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--server.listen", ":7500"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, ":7500", cfg.Server.Listen, "flag beats file")
	assert.True(t, cfg.Server.DevMode, "file beats default")
	assert.Equal(t, "error", cfg.Logging.Level, "env beats file")
	assert.Equal(t, int64(2048), cfg.Server.MaxBodyBytes, "env with underscore key")
	assert.Equal(t, "skip2", cfg.QR.Engine, "unchanged flag keeps file value")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("PORT", "")

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty_listen", mutate: func(c *Config) { c.Server.Listen = "" }},
		{name: "zero_body_limit", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }},
		{name: "bad_read_timeout", mutate: func(c *Config) { c.Server.ReadTimeout = "soon" }},
		{name: "bad_write_timeout", mutate: func(c *Config) { c.Server.WriteTimeout = "-" }},
		{name: "unknown_engine", mutate: func(c *Config) { c.QR.Engine = "zxing" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("", nil)
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "absent.env")))

	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("QRGEN_DOTENV_PROBE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("QRGEN_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("QRGEN_DOTENV_PROBE"))
}
