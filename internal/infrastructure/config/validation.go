package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validBackends    = []string{"auto", "native", "tools", "atotto", "design", "web", "webemu"}
	validSources     = []string{"auto", "native", "tools", "atotto", "design"}
	validPermissions = []string{"granted", "denied", "prompt"}
	validLogLevels   = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats  = []string{"console", "json"}
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateClipboard(config)...)
	validationErrors = append(validationErrors, validateDisplay(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateClipboard(config *Config) []string {
	var validationErrors []string
	c := config.Clipboard
	if !slices.Contains(validBackends, c.Backend) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("clipboard.backend must be one of %s (got %q)", strings.Join(validBackends, ", "), c.Backend))
	}
	if c.FetchTimeoutMs < 0 {
		validationErrors = append(validationErrors, "clipboard.fetch_timeout_ms must be non-negative")
	}
	if c.MaxInFlight < 1 {
		validationErrors = append(validationErrors, "clipboard.max_in_flight must be at least 1")
	}
	if !slices.Contains(validPermissions, c.WebEmu.Permission) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("clipboard.webemu.permission must be one of %s (got %q)", strings.Join(validPermissions, ", "), c.WebEmu.Permission))
	}
	if c.WebEmu.LatencyTicks < 1 || c.WebEmu.LatencyTicks > 1000 {
		validationErrors = append(validationErrors, "clipboard.webemu.latency_ticks must be between 1 and 1000")
	}
	if !slices.Contains(validSources, c.WebEmu.Source) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("clipboard.webemu.source must be one of %s (got %q)", strings.Join(validSources, ", "), c.WebEmu.Source))
	}
	return validationErrors
}

func validateDisplay(config *Config) []string {
	var validationErrors []string
	if config.Display.FPS < 1 || config.Display.FPS > 240 {
		validationErrors = append(validationErrors, "display.fps must be between 1 and 240")
	}
	if config.Display.MaxLines < 0 {
		validationErrors = append(validationErrors, "display.max_lines must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of %s (got %q)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

// normalizeConfig lowercases enum-like values so "Tools" and "tools" match.
func normalizeConfig(config *Config) {
	config.Clipboard.Backend = strings.ToLower(strings.TrimSpace(config.Clipboard.Backend))
	if config.Clipboard.Backend == "" {
		config.Clipboard.Backend = defaultBackend
	}
	config.Clipboard.WebEmu.Permission = strings.ToLower(strings.TrimSpace(config.Clipboard.WebEmu.Permission))
	config.Clipboard.WebEmu.Source = strings.ToLower(strings.TrimSpace(config.Clipboard.WebEmu.Source))
	if config.Clipboard.WebEmu.Source == "" {
		config.Clipboard.WebEmu.Source = defaultBackend
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Level)) {
	case "warning":
		config.Logging.Level = "warn"
	case "":
		config.Logging.Level = "info"
	default:
		config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Validate normalizes and validates cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	return validateConfig(cfg)
}
