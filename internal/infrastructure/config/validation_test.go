package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "bad scheme",
			mutate:  func(c *Config) { c.Dispatcher.InternalSchemes = []string{"1fave"} },
			wantErr: "dispatcher.internal_schemes",
		},
		{
			name:    "overlapping schemes",
			mutate:  func(c *Config) { c.Dispatcher.WebSchemes = []string{"fave"} },
			wantErr: "both internal and web",
		},
		{
			name:    "empty tracking param",
			mutate:  func(c *Config) { c.Dispatcher.ExtraTrackingParams = []string{" "} },
			wantErr: "extra_tracking_params",
		},
		{
			name:    "route without builder",
			mutate:  func(c *Config) { c.Routes = []RouteConfig{{Pattern: "fave://x"}} },
			wantErr: "routes[0].builder",
		},
		{
			name:    "negative retention",
			mutate:  func(c *Config) { c.Journal.RetentionDays = -1 },
			wantErr: "journal.retention_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
