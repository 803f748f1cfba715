package config

// Config represents the complete configuration structure
type Config struct {
	Modrinth ModrinthConfig    `mapstructure:"modrinth"`
	Build    BuildConfig       `mapstructure:"build"`
	Meta     MetaConfig        `mapstructure:"meta"`
	Orgs     map[string]string `mapstructure:"orgs"`
	Safety   SafetyConfig      `mapstructure:"safety"`
	Logging  LoggingConfig     `mapstructure:"logging"`
}

// ModrinthConfig holds Modrinth API connection details
type ModrinthConfig struct {
	URL          string `mapstructure:"url"`
	Token        string `mapstructure:"token"`
	UserAgent    string `mapstructure:"user_agent"`
	DebugLogging bool   `mapstructure:"debug_logging"`
	MaxParallel  int    `mapstructure:"max_parallel"`
}

// BuildConfig points at the built project tree the pipeline operates on
type BuildConfig struct {
	Dir string `mapstructure:"dir"`
}

// MetaConfig tunes how version display names are derived
type MetaConfig struct {
	// RedundantInfo is a substring stripped from project names when
	// composing version display names.
	RedundantInfo string `mapstructure:"redundant_info"`
	// Shortenable maps substrings to shorter replacements, applied in
	// order while the display name exceeds the length limit.
	Shortenable map[string]string `mapstructure:"shortenable"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun bool `mapstructure:"dry_run"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
