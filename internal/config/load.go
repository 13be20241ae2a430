package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot run with.
func (c *Config) Validate() error {
	v := c.Viewer
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if v.MinFOV <= 0 || v.MinFOV > v.MaxFOV || v.MaxFOV >= 180 {
		return fmt.Errorf("invalid fov range [%g, %g]", v.MinFOV, v.MaxFOV)
	}
	if v.FOV < v.MinFOV || v.FOV > v.MaxFOV {
		return fmt.Errorf("fov %g outside [%g, %g]", v.FOV, v.MinFOV, v.MaxFOV)
	}
	if v.PitchLimit <= 0 || v.PitchLimit >= 90 {
		return fmt.Errorf("pitch limit must be in (0, 90), got %g", v.PitchLimit)
	}
	if v.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", v.TickInterval)
	}
	if v.SphereSegments < 3 {
		return fmt.Errorf("sphere segments must be at least 3, got %d", v.SphereSegments)
	}
	if v.Near <= 0 || v.Far <= v.Near {
		return fmt.Errorf("invalid clip planes near=%g far=%g", v.Near, v.Far)
	}
	if v.SphereRadius <= 0 || v.SphereRadius >= v.Far {
		return fmt.Errorf("sphere radius %g must be positive and inside the far plane %g", v.SphereRadius, v.Far)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Panoview")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Panoview")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "panoview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "panoview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
