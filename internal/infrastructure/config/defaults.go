package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Journal defaults
	defaultJournalRetentionDays = 30 // days

	dirPerm = 0o755
)

// DefaultInternalSchemes are the schemes governed by the route table.
func DefaultInternalSchemes() []string {
	return []string{"fave"}
}

// DefaultWebSchemes are the schemes handed to the system browser when unmatched.
func DefaultWebSchemes() []string {
	return []string{"http", "https"}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Dispatcher: DispatcherConfig{
			InternalSchemes:     DefaultInternalSchemes(),
			WebSchemes:          DefaultWebSchemes(),
			StrictContexts:      false,
			ExtraTrackingParams: []string{},
		},
		Routes: []RouteConfig{},
		Journal: JournalConfig{
			Enabled:       true,
			RetentionDays: defaultJournalRetentionDays,
		},
	}
}
