package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	logger    zerolog.Logger
}

// NewManager creates a configuration manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerInDir(configDir)
}

// NewManagerInDir creates a configuration manager reading config.toml from dir.
func NewManagerInDir(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// CLIPFETCH_CLIPBOARD_BACKEND, CLIPFETCH_DISPLAY_FPS, ...
	v.SetEnvPrefix("CLIPFETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CLIPFETCH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CLIPFETCH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CLIPFETCH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CLIPFETCH_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
		logger:    zerolog.Nop(),
	}, nil
}

// SetLogger sets the logger used for reload events. Reload messages are
// dropped until it is called.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.dir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// createDefaultConfig writes config.toml and its JSON schema from the defaults.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.dir, "config.toml")
	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := WriteSchemaFile(m.dir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, "config.toml")
}

// Set overrides a single key, for command-line flags. It does not write the
// file. Call Load or Reload afterwards to apply it.
func (m *Manager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.Set(key, value)
}

// Reload re-reads the file and environment.
func (m *Manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reload()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setClipboardDefaults(defaults)
	m.setDisplayDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setClipboardDefaults(defaults *Config) {
	m.viper.SetDefault("clipboard.backend", defaults.Clipboard.Backend)
	m.viper.SetDefault("clipboard.fetch_timeout_ms", defaults.Clipboard.FetchTimeoutMs)
	m.viper.SetDefault("clipboard.worker", defaults.Clipboard.Worker)
	m.viper.SetDefault("clipboard.max_in_flight", defaults.Clipboard.MaxInFlight)
	m.viper.SetDefault("clipboard.webemu.permission", defaults.Clipboard.WebEmu.Permission)
	m.viper.SetDefault("clipboard.webemu.latency_ticks", defaults.Clipboard.WebEmu.LatencyTicks)
	m.viper.SetDefault("clipboard.webemu.source", defaults.Clipboard.WebEmu.Source)
}

func (m *Manager) setDisplayDefaults(defaults *Config) {
	m.viper.SetDefault("display.fps", defaults.Display.FPS)
	m.viper.SetDefault("display.placeholder", defaults.Display.Placeholder)
	m.viper.SetDefault("display.show_status", defaults.Display.ShowStatus)
	m.viper.SetDefault("display.max_lines", defaults.Display.MaxLines)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}
