package config

import (
	"fmt"
	"regexp"
	"strings"
)

// schemeSyntax follows RFC 3986: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var schemeSyntax = regexp.MustCompile(`^[a-z][a-z0-9+.\-]*$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDispatcher(config)...)
	validationErrors = append(validationErrors, validateRoutes(config)...)
	validationErrors = append(validationErrors, validateJournal(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateDispatcher(config *Config) []string {
	var validationErrors []string

	web := make(map[string]struct{}, len(config.Dispatcher.WebSchemes))
	for _, s := range config.Dispatcher.WebSchemes {
		if !schemeSyntax.MatchString(s) {
			validationErrors = append(validationErrors, fmt.Sprintf("dispatcher.web_schemes: invalid scheme %q", s))
		}
		web[s] = struct{}{}
	}
	for _, s := range config.Dispatcher.InternalSchemes {
		if !schemeSyntax.MatchString(s) {
			validationErrors = append(validationErrors, fmt.Sprintf("dispatcher.internal_schemes: invalid scheme %q", s))
		}
		if _, ok := web[s]; ok {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"scheme %q cannot be both internal and web", s,
			))
		}
	}
	for _, p := range config.Dispatcher.ExtraTrackingParams {
		if strings.TrimSpace(p) == "" {
			validationErrors = append(validationErrors, "dispatcher.extra_tracking_params cannot contain empty names")
			break
		}
	}
	return validationErrors
}

func validateRoutes(config *Config) []string {
	var validationErrors []string
	for i, r := range config.Routes {
		if r.Pattern == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("routes[%d].pattern cannot be empty", i))
		}
		if r.Builder == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("routes[%d].builder cannot be empty", i))
		}
	}
	return validationErrors
}

func validateJournal(config *Config) []string {
	if config.Journal.RetentionDays < 0 {
		return []string{"journal.retention_days must be non-negative"}
	}
	return nil
}
