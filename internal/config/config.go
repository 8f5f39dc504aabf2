// Package config manages persisted CLI settings through Viper, backed by
// ~/.cli-builder/config.yaml with CLI_BUILDER_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/OctaEDLP00/cli-builder-core/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known configuration keys.
const (
	// KeyPackageManager selects the install command: npm, pnpm, or yarn.
	KeyPackageManager = "package_manager"

	// KeyOutputRoot is the default parent directory for generated projects.
	KeyOutputRoot = "output_root"

	// KeySkipInstall disables the dependency-install step by default.
	KeySkipInstall = "skip_install"

	// KeyPluginDirs is the list of plugin directories loaded at startup.
	KeyPluginDirs = "plugin_dirs"
)

// Dir returns the path to the config directory (~/.cli-builder/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPackageManager, "npm")
	viper.SetDefault(KeyOutputRoot, ".")
	viper.SetDefault(KeySkipInstall, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// PluginDirs returns the configured plugin directories.
func PluginDirs() []string {
	return viper.GetStringSlice(KeyPluginDirs)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// SetSlice writes a list-valued config key and saves the config file.
func SetSlice(key string, values []string) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, values)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
