package orion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadSettings(t *testing.T) {
	input := `
window:
  width: 1280
  fullscreen: true
  title: Demo
logging:
  level: debug
profile: cpu
`

	settings, err := LoadSettings(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}

	got := settings.Apply(DefaultDescriptor())

	want := DefaultDescriptor()
	want.WindowWidth = 1280
	want.Fullscreen = true
	want.Title = "Demo"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}

	if settings.Logging.Level != "debug" || settings.Profile != "cpu" {
		t.Errorf("unexpected settings: %+v", settings)
	}
}

func TestLoadSettingsEmpty(t *testing.T) {
	settings, err := LoadSettings(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}

	if diff := cmp.Diff(DefaultDescriptor(), settings.Apply(DefaultDescriptor())); diff != "" {
		t.Errorf("empty settings changed the descriptor (-want +got):\n%s", diff)
	}
}

func TestLoadSettingsRejectsUnknownFields(t *testing.T) {
	_, err := LoadSettings(strings.NewReader("window:\n  widht: 10\n"))
	if err == nil {
		t.Fatal("LoadSettings() accepted a misspelled field")
	}
}

func TestLoadSettingsFileMissing(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadSettingsFile() failed: %v", err)
	}

	if settings.Window.Width != nil {
		t.Errorf("expected empty settings, got %+v", settings)
	}
}

func TestSettingsFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	content := "window:\n  height: 720\nlogging:\n  level: warn\n  format: text\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env := map[string]string{
		EnvSettingsFile: path,
		EnvLogLevel:     "error",
		EnvProfile:      "mem",
	}

	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	settings, err := SettingsFromEnv(lookup)
	if err != nil {
		t.Fatalf("SettingsFromEnv() failed: %v", err)
	}

	if settings.Window.Height == nil || *settings.Window.Height != 720 {
		t.Errorf("window height not read from file: %+v", settings.Window)
	}

	// environment wins over the file
	if settings.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error", settings.Logging.Level)
	}

	if settings.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want text", settings.Logging.Format)
	}

	if settings.Profile != "mem" {
		t.Errorf("Profile = %q, want mem", settings.Profile)
	}
}
