package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "original", cfg.Export.DefaultTaxonomy)
	assert.Equal(t, "GORC-MaLDReTH Tool", cfg.Export.CommentAuthor)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing addr",
			modify:  func(c *Config) { c.Server.Addr = "" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Server.ReadTimeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "empty cors origin",
			modify:  func(c *Config) { c.Server.CORSOrigins = []string{""} },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "unknown taxonomy",
			modify:  func(c *Config) { c.Export.DefaultTaxonomy = "bogus" },
			wantErr: true,
		},
		{
			name:    "unknown timezone",
			modify:  func(c *Config) { c.Export.Timezone = "Mars/Olympus" },
			wantErr: true,
		},
		{
			name:    "utc timezone",
			modify:  func(c *Config) { c.Export.Timezone = "UTC" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
server:
  addr: "127.0.0.1:8080"
  read_timeout: 5s
  cors_origins:
    - https://example.org
log:
  level: debug
  format: json
export:
  default_taxonomy: revised
  timezone: UTC
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "unset values keep defaults")
	assert.Equal(t, []string{"https://example.org"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "revised", cfg.Export.DefaultTaxonomy)
	assert.Equal(t, "GORC-MaLDReTH Tool", cfg.Export.CommentAuthor)

	loc, err := cfg.Export.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("server: [unclosed"), 0644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Server: ServerConfig{Addr: ":9000"},
		Export: ExportConfig{CommentAuthor: "Curator"},
	}

	base.Merge(override)

	assert.Equal(t, ":9000", base.Server.Addr)
	assert.Equal(t, "Curator", base.Export.CommentAuthor)
	// Untouched fields keep their defaults.
	assert.Equal(t, "info", base.Log.Level)
	assert.Equal(t, "original", base.Export.DefaultTaxonomy)

	base.Merge(nil)
	assert.Equal(t, ":9000", base.Server.Addr)
}

func TestConfigSaveToFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Export.DefaultTaxonomy = "revised"
	require.NoError(t, cfg.SaveToFile(configPath))

	loaded, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "revised", loaded.Export.DefaultTaxonomy)
}

// testLoader builds a loader isolated from the real environment and home.
func testLoader(t *testing.T, home, cwd string, env map[string]string) *Loader {
	t.Helper()
	l := NewLoader(slog.Default())
	l.getenv = func(k string) string { return env[k] }
	l.homeDir = func() (string, error) { return home, nil }
	l.workDir = func() (string, error) { return cwd, nil }
	return l
}

func TestLoader_Precedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	userPath := filepath.Join(home, UserConfigDir, UserConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(userPath), 0755))
	require.NoError(t, os.WriteFile(userPath, []byte("log:\n  level: warn\nexport:\n  comment_author: User\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(project, ProjectConfigFile), []byte("export:\n  comment_author: Project\n"), 0644))

	cfg, err := testLoader(t, home, nested, map[string]string{EnvPort: "8081"}).Load()
	require.NoError(t, err)

	assert.Equal(t, "Project", cfg.Export.CommentAuthor, "project config overrides user config")
	assert.Equal(t, ":8081", cfg.Server.Addr, "environment overrides files")
}

func TestLoader_Env(t *testing.T) {
	env := map[string]string{
		EnvPort:        "8081",
		EnvAddr:        "0.0.0.0:7000",
		EnvLogLevel:    "DEBUG",
		EnvCORSOrigins: "https://a.example, https://b.example,",
	}
	cfg, err := testLoader(t, t.TempDir(), t.TempDir(), env).Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:7000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestLoader_InvalidEnvFailsValidation(t *testing.T) {
	_, err := testLoader(t, t.TempDir(), t.TempDir(), map[string]string{EnvLogLevel: "loud"}).Load()
	assert.Error(t, err)
}

func TestLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explicit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":6000\"\n"), 0644))

	cfg, err := testLoader(t, t.TempDir(), t.TempDir(), nil).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Server.Addr)

	_, err = testLoader(t, t.TempDir(), t.TempDir(), nil).LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestLoader_EnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	l := testLoader(t, home, t.TempDir(), nil)

	path, created, err := l.EnsureUserConfig()
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, filepath.Join(home, UserConfigDir, UserConfigFile), path)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Second call leaves the file alone.
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0644))
	_, created, err = l.EnsureUserConfig()
	require.NoError(t, err)
	assert.False(t, created)
	cfg, err = LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_EnsureUserConfig_NoHome(t *testing.T) {
	l := testLoader(t, "", t.TempDir(), nil)
	_, _, err := l.EnsureUserConfig()
	assert.Error(t, err)
}
