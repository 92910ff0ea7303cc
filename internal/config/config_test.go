package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.Width != 80 {
		t.Errorf("expected default width 80, got %d", cfg.Display.Width)
	}

	if cfg.Display.Height != 24 {
		t.Errorf("expected default height 24, got %d", cfg.Display.Height)
	}

	if cfg.Display.ScanDelay != 5*time.Millisecond {
		t.Errorf("expected scan delay 5ms, got %v", cfg.Display.ScanDelay)
	}

	if cfg.Display.MessagePause != time.Second {
		t.Errorf("expected message pause 1s, got %v", cfg.Display.MessagePause)
	}

	if cfg.Display.ErrorPause != 1500*time.Millisecond {
		t.Errorf("expected error pause 1.5s, got %v", cfg.Display.ErrorPause)
	}

	if cfg.Display.BootPause != 1500*time.Millisecond {
		t.Errorf("expected boot pause 1.5s, got %v", cfg.Display.BootPause)
	}

	if !cfg.Display.Color {
		t.Error("expected display.color to be true")
	}

	if cfg.Words.File != "" {
		t.Errorf("expected empty words file, got %q", cfg.Words.File)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
display:
  width: 100
  height: 30
  scan_delay: 1ms
  message_pause: 250ms
  error_pause: 500ms
  boot_pause: 0s
  color: false
words:
  file: /tmp/words.yaml
stages:
  file: /tmp/stages.yaml
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Display.Width != 100 {
		t.Errorf("expected width 100, got %d", cfg.Display.Width)
	}

	if cfg.Display.Height != 30 {
		t.Errorf("expected height 30, got %d", cfg.Display.Height)
	}

	if cfg.Display.ScanDelay != time.Millisecond {
		t.Errorf("expected scan delay 1ms, got %v", cfg.Display.ScanDelay)
	}

	if cfg.Display.MessagePause != 250*time.Millisecond {
		t.Errorf("expected message pause 250ms, got %v", cfg.Display.MessagePause)
	}

	if cfg.Display.ErrorPause != 500*time.Millisecond {
		t.Errorf("expected error pause 500ms, got %v", cfg.Display.ErrorPause)
	}

	if cfg.Display.BootPause != 0 {
		t.Errorf("expected boot pause 0, got %v", cfg.Display.BootPause)
	}

	if cfg.Display.Color {
		t.Error("expected color to be false")
	}

	if cfg.Words.File != "/tmp/words.yaml" {
		t.Errorf("expected words file /tmp/words.yaml, got %q", cfg.Words.File)
	}

	if cfg.Stages.File != "/tmp/stages.yaml" {
		t.Errorf("expected stages file /tmp/stages.yaml, got %q", cfg.Stages.File)
	}
}

func TestLoadFromPathPartialOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only the scan delay is overridden; everything else keeps defaults.
	configContent := `
display:
  scan_delay: 2ms
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Display.ScanDelay != 2*time.Millisecond {
		t.Errorf("expected scan delay 2ms, got %v", cfg.Display.ScanDelay)
	}

	if cfg.Display.Width != 80 {
		t.Errorf("expected default width 80, got %d", cfg.Display.Width)
	}

	if !cfg.Display.Color {
		t.Error("expected default color true")
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"width too small", func(c *Config) { c.Display.Width = 20 }, true},
		{"height too small", func(c *Config) { c.Display.Height = 10 }, true},
		{"negative scan delay", func(c *Config) { c.Display.ScanDelay = -time.Second }, true},
		{"negative message pause", func(c *Config) { c.Display.MessagePause = -1 }, true},
		{"zero delays", func(c *Config) { c.ZeroDelays() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestZeroDelays(t *testing.T) {
	cfg := Default()
	cfg.ZeroDelays()

	if cfg.Display.ScanDelay != 0 || cfg.Display.MessagePause != 0 ||
		cfg.Display.ErrorPause != 0 || cfg.Display.BootPause != 0 {
		t.Errorf("ZeroDelays left a delay set: %+v", cfg.Display)
	}
}
