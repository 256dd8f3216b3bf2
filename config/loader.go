package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "gorcmap.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/gorcmap"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Environment variables consulted by the loader.
const (
	EnvPort        = "PORT"
	EnvAddr        = "GORCMAP_ADDR"
	EnvLogLevel    = "GORCMAP_LOG_LEVEL"
	EnvCORSOrigins = "GORCMAP_CORS_ORIGINS"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger  *slog.Logger
	getenv  func(string) string
	homeDir func() (string, error)
	workDir func() (string, error)
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:  logger,
		getenv:  os.Getenv,
		homeDir: os.UserHomeDir,
		workDir: os.Getwd,
	}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/gorcmap/config.yaml)
// 3. Project config (gorcmap.yaml in current or parent directories)
// 4. Environment variables
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if userConfigPath := l.userConfigPath(); userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	projectConfigPath := l.findProjectConfig()
	if projectConfigPath != "" {
		if projectConfig, err := LoadFromFile(projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
			config.Merge(projectConfig)
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	l.applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFile loads an explicit config file on top of defaults, then applies
// environment overrides.
func (l *Loader) LoadFile(path string) (*Config, error) {
	fileConfig, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	config.Merge(fileConfig)
	l.applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv overlays environment variables. GORCMAP_ADDR wins over PORT.
func (l *Loader) applyEnv(config *Config) {
	if port := l.getenv(EnvPort); port != "" {
		config.Server.Addr = ":" + port
	}
	if addr := l.getenv(EnvAddr); addr != "" {
		config.Server.Addr = addr
	}
	if level := l.getenv(EnvLogLevel); level != "" {
		config.Log.Level = strings.ToLower(level)
	}
	if origins := l.getenv(EnvCORSOrigins); origins != "" {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		config.Server.CORSOrigins = list
	}
}

// EnsureUserConfig creates the user config file with defaults if it doesn't
// exist. It returns the file path and whether the file was created.
func (l *Loader) EnsureUserConfig() (string, bool, error) {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return "", false, fmt.Errorf("cannot determine home directory")
	}

	if _, err := os.Stat(userConfigPath); err == nil {
		return userConfigPath, false, nil
	}

	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return "", false, err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return userConfigPath, true, nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home, err := l.homeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for gorcmap.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	cwd, err := l.workDir()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
