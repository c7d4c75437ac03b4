// Config loading for the menubook CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/petals-kitchen/menubook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileFull = "config.yaml"

	cfgKeyCurrency      = "currency"
	cfgKeyDefaultCourse = "default_course"
	cfgKeyLogLevel      = "log_level"
	cfgKeyLogFile       = "log_file"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Menubook configuration

# Currency symbol shown next to prices
currency: R

# Course preselected on the creation form (Breakfast, Mains, Desserts)
default_course: Mains

# Logging: level (debug, info, warn, error) and TUI log file (empty = off)
log_level: info
# log_file:
`

// loadConfig reads config.yaml using Viper. With an empty path it falls back
// to $HOME/.menubook/, creating the directory and a default config.yaml on
// first run. A missing config file is not an error; defaults apply.
func loadConfig(path string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCurrency, "R")
	v.SetDefault(cfgKeyDefaultCourse, string(types.DefaultCourse))
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFile, "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return types.Config{}, err
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return types.Config{}, fmt.Errorf("ensure default config: %w", err)
		}
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Currency:      v.GetString(cfgKeyCurrency),
		DefaultCourse: v.GetString(cfgKeyDefaultCourse),
		LogLevel:      v.GetString(cfgKeyLogLevel),
		LogFile:       v.GetString(cfgKeyLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".menubook"), nil
}

// ensureDefaultConfigFile creates the config directory and a default
// config.yaml when the file does not exist yet.
func ensureDefaultConfigFile(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(configDir, configFileFull)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
