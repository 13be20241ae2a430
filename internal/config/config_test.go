package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Title != "360 VR Image Viewer" {
		t.Errorf("expected title '360 VR Image Viewer', got %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	v := cfg.Viewer
	if v.FOV != 100 {
		t.Errorf("expected fov 100, got %f", v.FOV)
	}
	if v.MinFOV != 30 || v.MaxFOV != 120 {
		t.Errorf("expected fov range [30, 120], got [%f, %f]", v.MinFOV, v.MaxFOV)
	}
	if v.PitchLimit != 89 {
		t.Errorf("expected pitch limit 89, got %f", v.PitchLimit)
	}
	if v.MouseSensitivity != 0.2 {
		t.Errorf("expected mouse sensitivity 0.2, got %f", v.MouseSensitivity)
	}
	if v.MoveSpeed != 0.2 {
		t.Errorf("expected move speed 0.2, got %f", v.MoveSpeed)
	}
	if v.TickInterval != 16*time.Millisecond {
		t.Errorf("expected tick 16ms, got %v", v.TickInterval)
	}
	if v.SphereRadius != 500 || v.SphereSegments != 64 {
		t.Errorf("expected sphere 500/64, got %f/%d", v.SphereRadius, v.SphereSegments)
	}
	if v.Near != 0.1 || v.Far != 1000 {
		t.Errorf("expected clip planes 0.1/1000, got %f/%f", v.Near, v.Far)
	}
	if !v.RecenterOnZoomOut {
		t.Error("expected recenter_on_zoom_out to be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  vsync: false

viewer:
  fov: 90
  mouse_sensitivity: 0.5
  tick_interval: 10ms
  recenter_on_zoom_out: false

screenshot:
  dir: "/tmp/shots"

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	// Untouched keys keep their defaults
	if cfg.Window.Title != "360 VR Image Viewer" {
		t.Errorf("expected default title, got %q", cfg.Window.Title)
	}
	if cfg.Viewer.FOV != 90 {
		t.Errorf("expected fov 90, got %f", cfg.Viewer.FOV)
	}
	if cfg.Viewer.MouseSensitivity != 0.5 {
		t.Errorf("expected sensitivity 0.5, got %f", cfg.Viewer.MouseSensitivity)
	}
	if cfg.Viewer.TickInterval != 10*time.Millisecond {
		t.Errorf("expected tick 10ms, got %v", cfg.Viewer.TickInterval)
	}
	if cfg.Viewer.RecenterOnZoomOut {
		t.Error("expected recenter_on_zoom_out to be false")
	}
	if cfg.Viewer.SphereSegments != 64 {
		t.Errorf("expected default segments 64, got %d", cfg.Viewer.SphereSegments)
	}
	if cfg.Screenshot.Dir != "/tmp/shots" {
		t.Errorf("expected screenshot dir /tmp/shots, got %s", cfg.Screenshot.Dir)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"inverted fov range", func(c *Config) { c.Viewer.MinFOV, c.Viewer.MaxFOV = 120, 30 }},
		{"fov outside range", func(c *Config) { c.Viewer.FOV = 150 }},
		{"pitch limit at pole", func(c *Config) { c.Viewer.PitchLimit = 90 }},
		{"zero tick", func(c *Config) { c.Viewer.TickInterval = 0 }},
		{"too few segments", func(c *Config) { c.Viewer.SphereSegments = 2 }},
		{"far before near", func(c *Config) { c.Viewer.Far = 0.05 }},
		{"sphere beyond far plane", func(c *Config) { c.Viewer.SphereRadius = 2000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
logging:
  level: "warn"
viewer:
  fov: 75
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagDebug = true
	defer func() {
		*flagConfig = ""
		*flagDebug = false
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Level comes from the flag, not the file
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug' from flag, got %s", cfg.Logging.Level)
	}
	if cfg.Viewer.FOV != 75 {
		t.Errorf("expected fov 75 from file, got %f", cfg.Viewer.FOV)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("viewer:\n  fov: 170\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for fov outside range, got nil")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Viewer.FOV = 60
	cfg.Viewer.TickInterval = 20 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Viewer.FOV != 60 {
		t.Errorf("expected fov 60 after reload, got %f", loaded.Viewer.FOV)
	}
	if loaded.Viewer.TickInterval != 20*time.Millisecond {
		t.Errorf("expected tick 20ms after reload, got %v", loaded.Viewer.TickInterval)
	}
}

func TestSave(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir is only redirectable through XDG_CONFIG_HOME on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Viewer.RecenterOnZoomOut = false
	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := filepath.Join(ConfigDir(), "config.yaml"); path != want {
		t.Errorf("Save wrote %s, want %s", path, want)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Viewer.RecenterOnZoomOut {
		t.Error("expected recenter_on_zoom_out false after reload")
	}
}
