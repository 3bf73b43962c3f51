// Package config loads and watches the riblet configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	// explicit is set when the config file was named by the caller. A missing
	// explicit file is an error instead of a first-run default.
	explicit bool
}

// NewManager creates a manager reading config.toml from the XDG config directory.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	return newManager(v, false)
}

// NewManagerWithFile creates a manager reading the given file. The format
// follows the file extension (toml, yaml, json).
func NewManagerWithFile(path string) (*Manager, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config file path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	return newManager(v, true)
}

func newManager(v *viper.Viper, explicit bool) (*Manager, error) {
	// RIBLET_DATABASE_PATH, RIBLET_JOURNAL_ENABLED, ...
	v.SetEnvPrefix("RIBLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "RIBLET_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind RIBLET_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "RIBLET_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind RIBLET_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  explicit,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if m.explicit || !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload rebuilds m.config from viper's state. Must be called with m.mu held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config, m.viper.ConfigFileUsed())

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config, configFile string) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Dispatcher.InternalSchemes = normalizeSchemes(config.Dispatcher.InternalSchemes)
	if len(config.Dispatcher.InternalSchemes) == 0 {
		config.Dispatcher.InternalSchemes = DefaultInternalSchemes()
	}
	config.Dispatcher.WebSchemes = normalizeSchemes(config.Dispatcher.WebSchemes)
	if len(config.Dispatcher.WebSchemes) == 0 {
		config.Dispatcher.WebSchemes = DefaultWebSchemes()
	}

	for i := range config.Routes {
		config.Routes[i].Pattern = strings.TrimSpace(config.Routes[i].Pattern)
		config.Routes[i].Builder = strings.ToLower(strings.TrimSpace(config.Routes[i].Builder))
		config.Routes[i].Title = strings.TrimSpace(config.Routes[i].Title)
	}

	config.RoutesFile = strings.TrimSpace(config.RoutesFile)
	if config.RoutesFile != "" && !filepath.IsAbs(config.RoutesFile) && configFile != "" {
		config.RoutesFile = filepath.Join(filepath.Dir(configFile), config.RoutesFile)
	}
}

// normalizeSchemes lowercases, trims ":" and "://" suffixes and drops duplicates.
func normalizeSchemes(schemes []string) []string {
	out := make([]string, 0, len(schemes))
	seen := make(map[string]struct{}, len(schemes))
	for _, s := range schemes {
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.TrimSuffix(strings.TrimSuffix(s, "://"), ":")
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (c *Config) clone() *Config {
	out := *c
	out.Dispatcher.InternalSchemes = append([]string(nil), c.Dispatcher.InternalSchemes...)
	out.Dispatcher.WebSchemes = append([]string(nil), c.Dispatcher.WebSchemes...)
	out.Dispatcher.ExtraTrackingParams = append([]string(nil), c.Dispatcher.ExtraTrackingParams...)
	out.Routes = append([]RouteConfig(nil), c.Routes...)
	return &out
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// An empty database.path resolves to the XDG data dir in reload. The
	// default only registers the key so RIBLET_DATABASE_PATH is picked up.
	m.viper.SetDefault("database.path", "")

	m.setLoggingDefaults(defaults)
	m.setDispatcherDefaults(defaults)
	m.setJournalDefaults(defaults)
	m.viper.SetDefault("routes", defaults.Routes)
	m.viper.SetDefault("routes_file", defaults.RoutesFile)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setDispatcherDefaults(defaults *Config) {
	m.viper.SetDefault("dispatcher.internal_schemes", defaults.Dispatcher.InternalSchemes)
	m.viper.SetDefault("dispatcher.web_schemes", defaults.Dispatcher.WebSchemes)
	m.viper.SetDefault("dispatcher.strict_contexts", defaults.Dispatcher.StrictContexts)
	m.viper.SetDefault("dispatcher.extra_tracking_params", defaults.Dispatcher.ExtraTrackingParams)
}

func (m *Manager) setJournalDefaults(defaults *Config) {
	m.viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	m.viper.SetDefault("journal.retention_days", defaults.Journal.RetentionDays)
}
