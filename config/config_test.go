package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			URL:    "https://ml-arena.com",
			APIKey: "id:pass",
		},
		Output: OutputConfig{
			Format: "table",
		},
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
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing url",
			mutate:  func(c *Config) { c.Arena.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Arena.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder api key",
			mutate:  func(c *Config) { c.Arena.APIKey = "your-key-id:your-key-pass" },
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
		{
			name:   "json output format",
			mutate: func(c *Config) { c.Output.Format = "json" },
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.Format = "csv" },
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
