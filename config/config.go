package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. Secrets can be supplied through
// the environment (PACKSMITH_MODRINTH_TOKEN and friends) instead of the
// config file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".packsmith"))
		}

		// Check /etc
		v.AddConfigPath("/etc/packsmith/")
	}

	v.SetEnvPrefix("PACKSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Modrinth defaults
	v.SetDefault("modrinth.url", "https://api.modrinth.com")
	v.SetDefault("modrinth.debug_logging", false)
	v.SetDefault("modrinth.max_parallel", 6)

	// Build defaults
	v.SetDefault("build.dir", "build")

	// Safety defaults
	v.SetDefault("safety.dry_run", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Modrinth.URL == "" {
		return fmt.Errorf("modrinth.url is required")
	}

	if cfg.Modrinth.Token == "" {
		return fmt.Errorf("modrinth.token must be set (or PACKSMITH_MODRINTH_TOKEN exported)")
	}

	if cfg.Modrinth.UserAgent == "" {
		return fmt.Errorf("modrinth.user_agent must identify the operator (name and contact)")
	}

	if cfg.Modrinth.MaxParallel < 1 {
		return fmt.Errorf("modrinth.max_parallel must be at least 1")
	}

	if len(cfg.Orgs) == 0 {
		return fmt.Errorf("at least one organization must be configured under orgs")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
