package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configs.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeConfig(t, `log:
  level: debug
  file:
    enabled: true
    path: /tmp/power.log
input:
  root_dir: ./input
output:
  root_dir: ./data
  copy_root: /mnt/csv
  metrics_textfile: ./data/metrics.prom
pipeline:
  parallelism: 2
  join_strategy: indexed
  window_ms: 20
sources:
  - name: variorum
    window_ms: 100
  - name: nvml_power
server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
loader:
  enabled: true
  database_url: postgres://user:pw@localhost:5432/power
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.File.Enabled)
	assert.Equal(t, "/tmp/power.log", cfg.Log.File.Path)
	assert.Equal(t, "./input", cfg.Input.RootDir)
	assert.Equal(t, "./data", cfg.Output.RootDir)
	assert.Equal(t, "/mnt/csv", cfg.Output.CopyRoot)
	assert.Equal(t, "./data/metrics.prom", cfg.Output.MetricsTextfile)
	assert.Equal(t, 2, cfg.Pipeline.Parallelism)
	assert.Equal(t, "indexed", cfg.Pipeline.JoinStrategy)
	assert.Equal(t, 20.0, cfg.Pipeline.WindowMs)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, SourceConfig{Name: "variorum", WindowMs: 100}, cfg.Sources[0])
	assert.Equal(t, SourceConfig{Name: "nvml_power"}, cfg.Sources[1])
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Loader.Enabled)
	assert.Equal(t, "postgres://user:pw@localhost:5432/power", cfg.Loader.DatabaseURL)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "log:\n  level: warn\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./input", cfg.Input.RootDir)
	assert.Equal(t, "./data", cfg.Output.RootDir)
	assert.Equal(t, "/csv_data", cfg.Output.CopyRoot)
	assert.Equal(t, 4, cfg.Pipeline.Parallelism)
	assert.Equal(t, "linear", cfg.Pipeline.JoinStrategy)
	assert.Equal(t, 20.0, cfg.Pipeline.WindowMs)
	assert.Empty(t, cfg.Sources)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Loader.Enabled)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("POWER_ANALYTICS_INPUT_ROOT_DIR", "/srv/input")
	t.Setenv("POWER_ANALYTICS_PIPELINE_JOIN_STRATEGY", "indexed")
	path := writeConfig(t, "input:\n  root_dir: ./input\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/input", cfg.Input.RootDir)
	assert.Equal(t, "indexed", cfg.Pipeline.JoinStrategy)
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{
			name:      "unknown join strategy",
			content:   "pipeline:\n  join_strategy: hashed\n",
			wantField: "pipeline.joinstrategy (oneof=linear indexed)",
		},
		{
			name:      "non positive window",
			content:   "pipeline:\n  window_ms: -5\n",
			wantField: "pipeline.windowms (gt=0)",
		},
		{
			name:      "unknown source",
			content:   "sources:\n  - name: rapl\n",
			wantField: "sources[0].name",
		},
		{
			name:      "invalid port range",
			content:   "server:\n  port: 70000\n",
			wantField: "server.port (max=65535)",
		},
		{
			name:      "loader without database url",
			content:   "loader:\n  enabled: true\n",
			wantField: "loader.databaseurl (required)",
		},
		{
			name:      "log file without path",
			content:   "log:\n  file:\n    enabled: true\n    path: \"\"\n",
			wantField: "log.file.path (required)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			cfg, err := LoadConfig(path)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
