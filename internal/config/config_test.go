//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/trailers",
			expected: filepath.Join(home, "trailers"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/media/trailers/2024",
			expected: filepath.Join(home, "media", "trailers", "2024"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/media",
			expected: "/srv/media",
		},
		{
			name:     "relative path unchanged",
			input:    "media/trailers",
			expected: "media/trailers",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
}

func TestGetControlsConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	got := cfg.GetControlsConfig()

	if got.HideAfterMs != 3500 {
		t.Errorf("HideAfterMs = %d, want 3500", got.HideAfterMs)
	}
	if got.SkipSeconds != 10 {
		t.Errorf("SkipSeconds = %d, want 10", got.SkipSeconds)
	}
	if got.HideAfter() != 3500*time.Millisecond {
		t.Errorf("HideAfter() = %v, want 3.5s", got.HideAfter())
	}
	if got.SkipInterval() != 10*time.Second {
		t.Errorf("SkipInterval() = %v, want 10s", got.SkipInterval())
	}
}

func TestGetControlsConfig_BoundaryValues(t *testing.T) {
	tests := []struct {
		name     string
		hide     int
		skip     int
		wantHide int
		wantSkip int
	}{
		{"lower bounds kept", 1000, 1, 1000, 1},
		{"upper bounds kept", 10000, 120, 10000, 120},
		{"below range", 999, 0, 3500, 10},
		{"above range", 10001, 121, 3500, 10},
		{"negative", -1, -5, 3500, 10},
		{"custom", 4000, 15, 4000, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Controls: ControlsConfig{HideAfterMs: tt.hide, SkipSeconds: tt.skip}}
			got := cfg.GetControlsConfig()
			if got.HideAfterMs != tt.wantHide {
				t.Errorf("HideAfterMs = %d, want %d", got.HideAfterMs, tt.wantHide)
			}
			if got.SkipSeconds != tt.wantSkip {
				t.Errorf("SkipSeconds = %d, want %d", got.SkipSeconds, tt.wantSkip)
			}
		})
	}
}

func TestGetPlayerConfig(t *testing.T) {
	tests := []struct {
		interval int
		want     int
	}{
		{0, 250},
		{49, 250},
		{50, 50},
		{2000, 2000},
		{2001, 250},
	}

	for _, tt := range tests {
		cfg := &Config{Player: PlayerConfig{StatusIntervalMs: tt.interval, Loop: true}}
		got := cfg.GetPlayerConfig()
		if got.StatusIntervalMs != tt.want {
			t.Errorf("StatusIntervalMs(%d) = %d, want %d", tt.interval, got.StatusIntervalMs, tt.want)
		}
		if !got.Loop {
			t.Error("Loop should be preserved")
		}
	}

	if got := (PlayerConfig{StatusIntervalMs: 100}).StatusInterval(); got != 100*time.Millisecond {
		t.Errorf("StatusInterval() = %v, want 100ms", got)
	}
}

func TestIntegrations(t *testing.T) {
	off := false
	on := true

	tests := []struct {
		name   string
		cfg    IntegrationsConfig
		mpris  bool
		notify bool
	}{
		{"unset defaults to enabled", IntegrationsConfig{}, true, true},
		{"explicitly enabled", IntegrationsConfig{MPRIS: &on, Notifications: &on}, true, true},
		{"explicitly disabled", IntegrationsConfig{MPRIS: &off, Notifications: &off}, false, false},
		{"mixed", IntegrationsConfig{MPRIS: &off}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Integrations: tt.cfg}
			if got := cfg.MPRISEnabled(); got != tt.mpris {
				t.Errorf("MPRISEnabled() = %v, want %v", got, tt.mpris)
			}
			if got := cfg.NotificationsEnabled(); got != tt.notify {
				t.Errorf("NotificationsEnabled() = %v, want %v", got, tt.notify)
			}
		})
	}
}

func TestResolveMedia(t *testing.T) {
	cfg := &Config{MediaFolder: "/srv/trailers"}
	if got := cfg.ResolveMedia("a.mp3"); got != filepath.Join("/srv/trailers", "a.mp3") {
		t.Errorf("ResolveMedia(relative) = %q", got)
	}
	if got := cfg.ResolveMedia("/tmp/b.mp3"); got != "/tmp/b.mp3" {
		t.Errorf("ResolveMedia(absolute) = %q", got)
	}

	empty := &Config{}
	if got := empty.ResolveMedia("a.mp3"); got != "a.mp3" {
		t.Errorf("ResolveMedia without folder = %q, want a.mp3", got)
	}
}

func TestHasMetrics(t *testing.T) {
	if (&Config{}).HasMetrics() {
		t.Error("HasMetrics() = true for empty address")
	}
	if !(&Config{MetricsAddr: "127.0.0.1:9464"}).HasMetrics() {
		t.Error("HasMetrics() = false with address set")
	}
}

// chdirTemp switches to an empty temporary directory for the test.
func chdirTemp(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	// Values may be inherited from ~/.config/marquee/config.toml if it exists.
}

func TestLoad_BasicConfig(t *testing.T) {
	chdirTemp(t)

	configContent := `
icons = "nerd"
log_level = " DEBUG "
metrics_addr = "127.0.0.1:9464"
media_folder = "~/trailers"

[controls]
hide_after_ms = 4000
skip_seconds = 15

[player]
status_interval_ms = 100
loop = true
start_muted = true

[integrations]
mpris = false
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Icons != "nerd" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "nerd")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.MetricsAddr != "127.0.0.1:9464" {
		t.Errorf("MetricsAddr = %q", cfg.MetricsAddr)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "trailers"); cfg.MediaFolder != want {
		t.Errorf("MediaFolder = %q, want %q", cfg.MediaFolder, want)
	}

	controls := cfg.GetControlsConfig()
	if controls.HideAfterMs != 4000 || controls.SkipSeconds != 15 {
		t.Errorf("Controls = %+v, want 4000ms / 15s", controls)
	}

	p := cfg.GetPlayerConfig()
	if p.StatusIntervalMs != 100 || !p.Loop || !p.StartMuted {
		t.Errorf("Player = %+v", p)
	}

	if cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = true, want false")
	}
	if !cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = false, want true")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}
