package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lexistack/lexibuild/internal/source"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()

	v.SetConfigType("yaml")

	// Explicitly locate lexibuild.yaml and use SetConfigFile.
	// Precedence: ./lexibuild.yaml > ~/.config/lexibuild/lexibuild.yaml
	configFileSet := false

	if cwd, err := os.Getwd(); err == nil {
		configPath := filepath.Join(cwd, "lexibuild.yaml")
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			configFileSet = true
		}
	}

	if !configFileSet {
		if configDir, err := os.UserConfigDir(); err == nil {
			configPath := filepath.Join(configDir, "lexibuild", "lexibuild.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	// Automatic environment variable binding.
	// Environment variables take precedence over config file values:
	// LEXI_API_KEY, LEXI_INPUT, LEXI_DB, LEXI_LIMIT, LEXI_MODEL,
	// LEXI_LOG_FILE.
	v.SetEnvPrefix("LEXI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-key", "")
	v.SetDefault("input", "lemmas.tsv")
	v.SetDefault("db", "dictionary.db")
	v.SetDefault("limit", source.DefaultLimit)
	v.SetDefault("model", "")
	v.SetDefault("log-file", "")

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// GetString retrieves a string configuration value
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt retrieves an integer configuration value
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// Set sets a configuration value
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}
