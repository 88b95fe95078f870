package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

var logLevels = map[string]wgpu.LogLevel{
	"OFF":   wgpu.LogLevelOff,
	"ERROR": wgpu.LogLevelError,
	"WARN":  wgpu.LogLevelWarn,
	"INFO":  wgpu.LogLevelInfo,
	"DEBUG": wgpu.LogLevelDebug,
	"TRACE": wgpu.LogLevelTrace,
}

func init() {
	if level, ok := logLevels[strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL"))]; ok {
		wgpu.SetLogLevel(level)
	}
}

// preferred surface format, used if the surface supports it
const preferredFormat = wgpu.TextureFormatBGRA8Unorm

// Context holds the webgpu objects bound to a single window surface.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

// newContext binds a device to the window surface described by sd. It also
// returns a surface configuration built from what the surface supports,
// without a size. The surface must be configured with a size before use.
func newContext(sd *wgpu.SurfaceDescriptor) (ctx *Context, config *wgpu.SurfaceConfiguration, err error) {
	ctx = &Context{}

	defer func() {
		if err != nil {
			ctx.Release()
			ctx = nil
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	ctx.Surface = instance.CreateSurface(sd)

	ctx.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    ctx.Surface,
	})

	if err != nil {
		return ctx, nil, fmt.Errorf("request adapter: %w", err)
	}

	ctx.Device, err = ctx.Adapter.RequestDevice(nil)
	if err != nil {
		return ctx, nil, fmt.Errorf("request device: %w", err)
	}

	ctx.Queue = ctx.Device.GetQueue()

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return ctx, nil, errors.New("surface is not compatible with the adapter")
	}

	format := caps.Formats[0]
	if slices.Contains(caps.Formats, preferredFormat) {
		format = preferredFormat
	}

	config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}

	return ctx, config, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
