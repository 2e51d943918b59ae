// Package config provides configuration management for clipfetch with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for clipfetch.
type Config struct {
	// Clipboard selects and tunes the clipboard backend.
	Clipboard ClipboardConfig `mapstructure:"clipboard" toml:"clipboard" json:"clipboard"`
	// Display controls the watch view.
	Display DisplayConfig `mapstructure:"display" toml:"display" json:"display"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// ClipboardConfig selects the backend and how reads are issued.
type ClipboardConfig struct {
	// Backend is one of auto, native, tools, atotto, design, web, webemu.
	Backend string `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=auto,enum=native,enum=tools,enum=atotto,enum=design,enum=web,enum=webemu"`
	// FetchTimeoutMs abandons a pending read older than this and issues a new
	// one. 0 waits forever.
	FetchTimeoutMs int `mapstructure:"fetch_timeout_ms" toml:"fetch_timeout_ms" json:"fetch_timeout_ms" jsonschema:"minimum=0"`
	// Worker runs synchronous backends on a goroutine and delivers results on
	// the next frame.
	Worker bool `mapstructure:"worker" toml:"worker" json:"worker"`
	// MaxInFlight bounds concurrent worker reads.
	MaxInFlight int          `mapstructure:"max_in_flight" toml:"max_in_flight" json:"max_in_flight" jsonschema:"minimum=1"`
	WebEmu      WebEmuConfig `mapstructure:"webemu" toml:"webemu" json:"webemu"`
}

// WebEmuConfig configures the emulated browser clipboard.
type WebEmuConfig struct {
	// Permission is the clipboard-read permission state: granted, denied or prompt.
	Permission string `mapstructure:"permission" toml:"permission" json:"permission" jsonschema:"enum=granted,enum=denied,enum=prompt"`
	// LatencyTicks is how many frames a readText promise stays pending.
	LatencyTicks int `mapstructure:"latency_ticks" toml:"latency_ticks" json:"latency_ticks" jsonschema:"minimum=1,maximum=1000"`
	// Source is the synchronous backend feeding the emulator.
	Source string `mapstructure:"source" toml:"source" json:"source" jsonschema:"enum=auto,enum=native,enum=tools,enum=atotto,enum=design"`
}

// DisplayConfig controls the watch view.
type DisplayConfig struct {
	// FPS is the frame rate of the watch loop; one poll per frame.
	FPS int `mapstructure:"fps" toml:"fps" json:"fps" jsonschema:"minimum=1,maximum=240"`
	// Placeholder is shown before the first read resolves.
	Placeholder string `mapstructure:"placeholder" toml:"placeholder" json:"placeholder"`
	ShowStatus  bool   `mapstructure:"show_status" toml:"show_status" json:"show_status"`
	// MaxLines truncates long clipboard text. 0 shows everything that fits.
	MaxLines int `mapstructure:"max_lines" toml:"max_lines" json:"max_lines" jsonschema:"minimum=0"`
}

// LoggingConfig controls log output. The watch view never logs to the
// terminal; set File to keep logs.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File is the log file path. Empty disables file logging.
	File       string `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}
