package config

// Config is the full riblet configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher" yaml:"dispatcher" toml:"dispatcher" json:"dispatcher"`

	// Routes is the ordered route table. The first matching pattern wins.
	Routes []RouteConfig `mapstructure:"routes" yaml:"routes" toml:"routes" json:"routes"`

	// RoutesFile optionally points to a YAML, TOML or JSON file whose routes
	// are appended after Routes.
	RoutesFile string `mapstructure:"routes_file" yaml:"routes_file" toml:"routes_file" json:"routes_file"`

	Journal  JournalConfig  `mapstructure:"journal" yaml:"journal" toml:"journal" json:"journal"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`
}

// DispatcherConfig tunes how navigation targets are classified.
type DispatcherConfig struct {
	InternalSchemes []string `mapstructure:"internal_schemes" yaml:"internal_schemes" toml:"internal_schemes" json:"internal_schemes"`
	WebSchemes      []string `mapstructure:"web_schemes" yaml:"web_schemes" toml:"web_schemes" json:"web_schemes"`

	// StrictContexts rejects a second unit for an already presented target
	// instead of replacing it.
	StrictContexts bool `mapstructure:"strict_contexts" yaml:"strict_contexts" toml:"strict_contexts" json:"strict_contexts"`

	ExtraTrackingParams []string `mapstructure:"extra_tracking_params" yaml:"extra_tracking_params" toml:"extra_tracking_params" json:"extra_tracking_params"`
}

// RouteConfig is one route table entry.
type RouteConfig struct {
	Pattern string `mapstructure:"pattern" yaml:"pattern" toml:"pattern" json:"pattern"`
	Builder string `mapstructure:"builder" yaml:"builder" toml:"builder" json:"builder"`
	Title   string `mapstructure:"title" yaml:"title" toml:"title" json:"title,omitempty"`
}

// JournalConfig controls the decision journal.
type JournalConfig struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	RetentionDays int  `mapstructure:"retention_days" yaml:"retention_days" toml:"retention_days" json:"retention_days"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}
