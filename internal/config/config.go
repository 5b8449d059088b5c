package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
	"github.com/videojs/vjsplugin/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys that may be stored in the user config. Each one seeds the matching
// prompt default for every project the user generates.
const (
	KeyAuthor  = "author"
	KeyLicense = "license"
	KeyScope   = "scope"
	KeyBuilder = "builder"
	KeyPolicy  = "policy"
)

var knownKeys = []string{KeyAuthor, KeyBuilder, KeyLicense, KeyPolicy, KeyScope}

// Dir returns the path to the config directory (~/.vjsplugin/). The
// VJSPLUGIN_HOME environment variable overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.vjsplugin/config.yaml).
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

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Viper returns the global instance holding the user config. It satisfies
// the prompt package's Source interface.
func Viper() *viper.Viper {
	return viper.GetViper()
}

// KnownKeys returns the keys accepted by Set.
func KnownKeys() []string {
	return slices.Clone(knownKeys)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(knownKeys, key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, knownKeys)
	}

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
