// Package appbase runs an orion.Application in a native desktop window.
package appbase

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/appbase/glimpse/desktop"
	"github.com/oliverbestmann/appbase/orion"
	"github.com/oliverbestmann/appbase/pulse"
)

var _ orion.Surface = (*pulse.Renderer)(nil)

// Run creates the window for app and runs the frame loop until the
// application exits. Errors during startup are returned before the
// first frame.
func Run(app orion.Application) error {
	if app == nil {
		return errors.New("application must not be nil")
	}

	settings, err := orion.SettingsFromEnv(os.LookupEnv)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	desc := settings.Apply(app.Descriptor())

	if desc.WithLogging {
		if err := orion.ConfigureLogging(os.Stderr, settings); err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
	}

	prof, err := orion.StartProfile(settings.Profile)
	if err != nil {
		return err
	}

	defer prof.Stop()

	config := desc.WindowConfig()

	win, err := desktop.NewWindow(desktop.Options{
		Width:      config.Width,
		Height:     config.Height,
		Title:      config.Title,
		Fullscreen: config.Fullscreen,
		Resizable:  config.Resizable,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	slog.Info("Window created",
		slog.Int("width", int(config.Width)),
		slog.Int("height", int(config.Height)),
		slog.String("monitor", win.PrimaryMonitor().Name()),
	)

	renderer, err := pulse.NewRenderer(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	defer renderer.Release()

	driver := orion.NewDriver(win, app, config, orion.DriverOptions{
		Surface: renderer,
	})

	return driver.Run()
}
