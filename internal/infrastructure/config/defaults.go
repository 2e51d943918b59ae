package config

// Default configuration constants
const (
	// Clipboard defaults
	defaultBackend      = "auto"
	defaultMaxInFlight  = 4
	defaultLatencyTicks = 2

	// Display defaults
	defaultFPS         = 30
	defaultPlaceholder = "(waiting for clipboard)"

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Clipboard: ClipboardConfig{
			Backend:        defaultBackend,
			FetchTimeoutMs: 0,
			Worker:         false,
			MaxInFlight:    defaultMaxInFlight,
			WebEmu: WebEmuConfig{
				Permission:   "granted",
				LatencyTicks: defaultLatencyTicks,
				Source:       defaultBackend,
			},
		},
		Display: DisplayConfig{
			FPS:         defaultFPS,
			Placeholder: defaultPlaceholder,
			ShowStatus:  true,
			MaxLines:    0,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			File:       "",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}
