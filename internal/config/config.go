package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DeviceConfig is a saved Launchpad profile
type DeviceConfig struct {
	ID      string `json:"id"`               // Unique identifier
	Name    string `json:"name"`             // User-friendly name
	OutPort string `json:"out_port"`         // MIDI output port name
	Header  string `json:"header,omitempty"` // SysEx header as hex, e.g. "00 20 29 02 18"
}

// NewDeviceConfig creates a new device config with a generated ID
func NewDeviceConfig(name, outPort string) DeviceConfig {
	return DeviceConfig{
		ID:      uuid.New().String(),
		Name:    name,
		OutPort: outPort,
	}
}

// HeaderBytes parses the SysEx header. A blank header returns nil.
func (d DeviceConfig) HeaderBytes() ([]byte, error) {
	s := strings.Join(strings.Fields(d.Header), "")
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid header for device %s: %w", d.Name, err)
	}
	return b, nil
}

// Config holds application configuration
type Config struct {
	LogLevel      string         `json:"log_level"`
	DefaultDevice string         `json:"default_device"`
	Devices       []DeviceConfig `json:"devices"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Devices:  []DeviceConfig{},
	}
}

// DefaultPath returns the platform-appropriate config file path
func DefaultPath() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-launchpad", "config.json"), nil
}

// Load reads the config from path, returning defaults if not found
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Ensure slices are not nil
	if cfg.Devices == nil {
		cfg.Devices = []DeviceConfig{}
	}
	return cfg, nil
}

// Save writes the config to path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AddDevice adds a new device to the config
func (c *Config) AddDevice(device DeviceConfig) {
	c.Devices = append(c.Devices, device)
}

// RemoveDevice removes a device by ID or name
func (c *Config) RemoveDevice(nameOrID string) bool {
	for i, d := range c.Devices {
		if d.ID == nameOrID || d.Name == nameOrID {
			c.Devices = append(c.Devices[:i], c.Devices[i+1:]...)
			if c.DefaultDevice == d.Name || c.DefaultDevice == d.ID {
				c.DefaultDevice = ""
			}
			return true
		}
	}
	return false
}

// FindDevice returns a device by ID or name, or nil if not found
func (c *Config) FindDevice(nameOrID string) *DeviceConfig {
	for i := range c.Devices {
		if c.Devices[i].ID == nameOrID || c.Devices[i].Name == nameOrID {
			return &c.Devices[i]
		}
	}
	return nil
}
