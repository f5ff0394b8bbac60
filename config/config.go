package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SerialConfig describes the accelerometer's serial attachment.
type SerialConfig struct {
	Device string `json:"device,omitempty"`
	Baud   int    `json:"baud,omitempty"`
}

// MIDIOutConfig selects the MIDI output port.
type MIDIOutConfig struct {
	// PortName is matched as a case-insensitive substring against the
	// available output ports. Empty picks the first usable port.
	PortName string `json:"portName,omitempty"`
}

// Config is host wiring only: where samples come from and where MIDI
// goes. Instrument state (octave, scale, power) is never persisted -
// the instrument always wakes up at its defaults.
type Config struct {
	Serial  SerialConfig  `json:"serial,omitempty"`
	MIDIOut MIDIOutConfig `json:"midiOut,omitempty"`
	TickMs  int           `json:"tickMs,omitempty"` // demo sweep pacing
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Serial: SerialConfig{
			Device: "/dev/ttyACM0",
			Baud:   115200,
		},
		TickMs: 50,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tiltone"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
