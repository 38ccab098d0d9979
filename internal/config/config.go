package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "toastkit.json"

	// DefaultAddr is the default listen address for the demo server.
	DefaultAddr = ":4422"

	// DefaultPrefsFile is the default location the theme mode persists to.
	DefaultPrefsFile = "toastkit-prefs.json"
)

// Config represents the complete toastkit.json configuration.
type Config struct {
	// Addr is the listen address for the demo server.
	Addr string `json:"addr,omitempty"`

	// Metrics enables the Prometheus /metrics endpoint.
	Metrics bool `json:"metrics,omitempty"`

	// Tracing enables the OpenTelemetry event middleware.
	Tracing bool `json:"tracing,omitempty"`

	// PrefsFile is the file user preferences persist to.
	PrefsFile string `json:"prefsFile,omitempty"`

	// Toast tunes the notification behavior.
	Toast ToastConfig `json:"toast,omitempty"`
}

// ToastConfig overrides the kit's default tuning. Zero fields keep their
// defaults.
type ToastConfig struct {
	// MaxVisiblePerAnchor caps how many cards show per screen region.
	MaxVisiblePerAnchor int `json:"maxVisiblePerAnchor,omitempty"`

	// DefaultDurationMs is the auto-dismiss delay in milliseconds.
	DefaultDurationMs int `json:"defaultDurationMs,omitempty"`

	// ExitGraceMs is the departure animation window in milliseconds.
	ExitGraceMs int `json:"exitGraceMs,omitempty"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		Addr:      DefaultAddr,
		Metrics:   true,
		PrefsFile: DefaultPrefsFile,
	}
}

// Load reads the configuration from path. A missing file returns the
// defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.PrefsFile == "" {
		cfg.PrefsFile = DefaultPrefsFile
	}

	return cfg, nil
}

// DefaultDuration returns the configured auto-dismiss delay, or zero when
// unset (callers fall back to the kit default).
func (t ToastConfig) DefaultDuration() time.Duration {
	return time.Duration(t.DefaultDurationMs) * time.Millisecond
}

// ExitGrace returns the configured departure window, or zero when unset.
func (t ToastConfig) ExitGrace() time.Duration {
	return time.Duration(t.ExitGraceMs) * time.Millisecond
}
