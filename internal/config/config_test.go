package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, ":8106", cfg.Server.Addr)
	assert.True(t, cfg.Server.Metrics)
	assert.Equal(t, "simulator", cfg.Scan.Adapter)
	assert.Equal(t, 8, cfg.Scan.MaxDevices)
	assert.Equal(t, "2e8a:000c", cfg.Scan.Probe)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jep106.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  encoding: json
server:
  addr: 127.0.0.1:9000
  cors_origins:
    - http://localhost:3000
scan:
  max_devices: 4
`), 0o644))

	t.Setenv("JEP106_OUTPUT_FORMAT", "json")
	t.Setenv("JEP106_SERVER_METRICS", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 4, cfg.Scan.MaxDevices)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Server.Metrics)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:    LogConfig{Level: "info", Encoding: "console"},
			Output: OutputConfig{Format: "text"},
			Scan:   ScanConfig{Adapter: "simulator", MaxDevices: 1, SpeedHz: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }},
		{name: "bad encoding", mutate: func(c *Config) { c.Log.Encoding = "xml" }},
		{name: "bad format", mutate: func(c *Config) { c.Output.Format = "csv" }},
		{name: "empty format", mutate: func(c *Config) { c.Output.Format = "" }},
		{name: "zero devices", mutate: func(c *Config) { c.Scan.MaxDevices = 0 }},
		{name: "huge chain", mutate: func(c *Config) { c.Scan.MaxDevices = 1000 }},
		{name: "zero speed", mutate: func(c *Config) { c.Scan.SpeedHz = 0 }},
		{name: "unknown adapter", mutate: func(c *Config) { c.Scan.Adapter = "ftdi" }},
		{name: "cors origin without scheme", mutate: func(c *Config) { c.Server.CORSOrigins = []string{"localhost:3000"} }},
		{name: "empty cors origin", mutate: func(c *Config) { c.Server.CORSOrigins = []string{""} }},
		{name: "bad probe", mutate: func(c *Config) { c.Scan.Probe = "picoprobe" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
