package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Modrinth: ModrinthConfig{
			URL:         "https://api.modrinth.com",
			Token:       "mrp_token",
			UserAgent:   "example/packsmith (ops@example.com)",
			MaxParallel: 6,
		},
		Orgs: map[string]string{"main": "jIL2YTOk"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing URL",
			mutate:  func(c *Config) { c.Modrinth.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Modrinth.Token = "" },
			wantErr: true,
		},
		{
			name:    "missing user agent",
			mutate:  func(c *Config) { c.Modrinth.UserAgent = "" },
			wantErr: true,
		},
		{
			name:    "zero parallelism",
			mutate:  func(c *Config) { c.Modrinth.MaxParallel = 0 },
			wantErr: true,
		},
		{
			name:    "no organizations",
			mutate:  func(c *Config) { c.Orgs = nil },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
