package orion

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables read by SettingsFromEnv.
const (
	EnvSettingsFile = "APPBASE_SETTINGS"
	EnvLogLevel     = "APPBASE_LOG_LEVEL"
	EnvLogFormat    = "APPBASE_LOG_FORMAT"
	EnvProfile      = "APPBASE_PROFILE"
)

// Settings are user overrides for an application. They are usually read
// from a yaml file, fields that are not set keep the value the
// application asked for.
type Settings struct {
	Window struct {
		Width      *uint32 `yaml:"width"`
		Height     *uint32 `yaml:"height"`
		Fullscreen *bool   `yaml:"fullscreen"`
		Resizable  *bool   `yaml:"resizable"`
		Title      *string `yaml:"title"`
	} `yaml:"window"`

	Logging struct {
		// one of off, error, warn, info, debug
		Level string `yaml:"level"`

		// one of text, json. Empty picks text for terminals, json otherwise.
		Format string `yaml:"format"`
	} `yaml:"logging"`

	// one of cpu, mem, trace
	Profile string `yaml:"profile"`
}

func LoadSettings(r io.Reader) (Settings, error) {
	var settings Settings

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	return settings, nil
}

// LoadSettingsFile reads settings from a file. A missing file is not an
// error and yields empty settings.
func LoadSettingsFile(path string) (Settings, error) {
	fp, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}

	defer fp.Close()

	return LoadSettings(fp)
}

// SettingsFromEnv loads the settings file named by APPBASE_SETTINGS, if any,
// and applies the remaining APPBASE_* variables on top of it.
func SettingsFromEnv(lookup func(string) (string, bool)) (Settings, error) {
	var settings Settings

	if path, ok := lookup(EnvSettingsFile); ok && path != "" {
		var err error

		settings, err = LoadSettingsFile(path)
		if err != nil {
			return Settings{}, err
		}
	}

	if level, ok := lookup(EnvLogLevel); ok {
		settings.Logging.Level = level
	}

	if format, ok := lookup(EnvLogFormat); ok {
		settings.Logging.Format = format
	}

	if profile, ok := lookup(EnvProfile); ok {
		settings.Profile = profile
	}

	return settings, nil
}

// Apply returns a copy of the descriptor with the window overrides applied.
func (s Settings) Apply(desc Descriptor) Descriptor {
	if s.Window.Width != nil {
		desc.WindowWidth = *s.Window.Width
	}

	if s.Window.Height != nil {
		desc.WindowHeight = *s.Window.Height
	}

	if s.Window.Fullscreen != nil {
		desc.Fullscreen = *s.Window.Fullscreen
	}

	if s.Window.Resizable != nil {
		desc.Resizable = *s.Window.Resizable
	}

	if s.Window.Title != nil {
		desc.Title = *s.Window.Title
	}

	return desc
}
