package config

import (
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "haikumator.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/haikumator"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *zap.Logger
	home   func() (string, error)
	cwd    func() (string, error)
}

// NewLoader creates a new configuration loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger, home: os.UserHomeDir, cwd: os.Getwd}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/haikumator/config.yaml)
// 3. Project config (haikumator.yaml in current or parent directories)
// 4. The explicit file, if path is not empty
//
// A broken user or project file is logged and skipped; a broken explicit
// file is an error.
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", zap.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("Failed to load user config", zap.String("path", userConfigPath), zap.Error(err))
		}
	}

	if projectConfigPath := l.findProjectConfig(); projectConfigPath != "" {
		if projectConfig, err := LoadFromFile(projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", zap.String("path", projectConfigPath))
			config.Merge(projectConfig)
		} else {
			l.logger.Warn("Failed to load project config", zap.String("path", projectConfigPath), zap.Error(err))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	if path != "" {
		explicit, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", zap.String("path", path))
		config.Merge(explicit)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() (string, error) {
	userConfigPath := l.userConfigPath()
	if userConfigPath == "" {
		return "", errors.New("cannot determine home directory")
	}
	if _, err := os.Stat(userConfigPath); err == nil {
		return userConfigPath, nil
	}

	if err := DefaultConfig().SaveToFile(userConfigPath); err != nil {
		return "", err
	}

	l.logger.Info("Created default user config", zap.String("path", userConfigPath))
	return userConfigPath, nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home, err := l.home()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for haikumator.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	dir, err := l.cwd()
	if err != nil {
		return ""
	}

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
