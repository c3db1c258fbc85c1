package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.MetricsFile)
	assert.Zero(t, cfg.MaxHopLimit)
	assert.Zero(t, cfg.MaxPathLength)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "routefinder.yaml", `
log_level: debug
log_format: text
max_hop_limit: 64
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, int64(64), cfg.MaxHopLimit)
	// Absent keys keep defaults
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Zero(t, cfg.MaxPathLength)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "log_level: [unterminated\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "max_hop_limit: lots\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "text")
	t.Setenv(EnvColor, ColorNever)
	t.Setenv(EnvMetricsFile, "/tmp/routefinder.prom")
	t.Setenv(EnvMaxHops, "12")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "/tmp/routefinder.prom", cfg.MetricsFile)
	assert.Equal(t, int64(12), cfg.MaxHopLimit)
}

func TestApplyEnv_EmptyKeepsValues(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg := Default()
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestApplyEnv_InvalidHops(t *testing.T) {
	t.Setenv(EnvMaxHops, "ten")

	cfg := Default()
	err := cfg.ApplyEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMaxHops)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: "log_level",
		},
		{
			name:    "empty log format",
			mutate:  func(c *Config) { c.LogFormat = "" },
			wantErr: "log_format: field is required",
		},
		{
			name:    "unknown colour mode",
			mutate:  func(c *Config) { c.Color = "sometimes" },
			wantErr: `Config.Color: value "sometimes" must be one of [auto always never]`,
		},
		{
			name:    "empty colour mode",
			mutate:  func(c *Config) { c.Color = "" },
			wantErr: "color: field is required",
		},
		{
			name:    "negative hop limit",
			mutate:  func(c *Config) { c.MaxHopLimit = -1 },
			wantErr: "max_hop_limit: must be at least 0",
		},
		{
			name:    "hop limit above ceiling",
			mutate:  func(c *Config) { c.MaxHopLimit = MaxHopLimitCeiling + 1 },
			wantErr: "Config.MaxHopLimit",
		},
		{
			name:    "negative path length",
			mutate:  func(c *Config) { c.MaxPathLength = -5 },
			wantErr: "max_path_length",
		},
		{
			name:    "metrics file in missing directory",
			mutate:  func(c *Config) { c.MetricsFile = "/definitely/not/here/out.prom" },
			wantErr: "Config.MetricsFile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_MetricsFileInExistingDir(t *testing.T) {
	cfg := Default()
	cfg.MetricsFile = filepath.Join(t.TempDir(), "routefinder.prom")

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Nil(t *testing.T) {
	var cfg *Config
	assert.Error(t, cfg.Validate())
}
