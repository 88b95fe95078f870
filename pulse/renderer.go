package pulse

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Renderer owns the webgpu surface of a window. It is handed to the
// application on every redraw. Drawing itself is left to the application,
// which can use the embedded Context to build its own pipelines and draw
// into the view returned by Frame.
type Renderer struct {
	*Context

	// color the frame is cleared to if the application does not draw into it
	ClearColor wgpu.Color

	surfaceConfig *wgpu.SurfaceConfiguration

	width, height uint32

	// surface texture of the current frame, acquired on first use
	frame     *wgpu.Texture
	frameView *wgpu.TextureView
}

func NewRenderer(sd *wgpu.SurfaceDescriptor) (*Renderer, error) {
	ctx, config, err := newContext(sd)
	if err != nil {
		return nil, fmt.Errorf("initialize wgpu: %w", err)
	}

	r := &Renderer{
		Context:       ctx,
		ClearColor:    wgpu.Color{A: 1},
		surfaceConfig: config,
	}

	return r, nil
}

// Size returns the size the surface is currently configured with.
func (r *Renderer) Size() (uint32, uint32) {
	return r.width, r.height
}

// Format returns the texture format of the surface.
func (r *Renderer) Format() wgpu.TextureFormat {
	return r.surfaceConfig.Format
}

// Configure resizes the surface. A minimized window reports a zero size,
// the surface keeps its previous configuration in that case.
func (r *Renderer) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		slog.Debug("Skip configuring empty surface")
		return nil
	}

	r.releaseFrame()

	r.surfaceConfig.Width = width
	r.surfaceConfig.Height = height
	r.Surface.Configure(r.Device, r.surfaceConfig)

	r.width, r.height = width, height

	return nil
}

// Frame returns the view of the surface texture drawn during the current
// redraw. The view is valid until Present.
func (r *Renderer) Frame() (*wgpu.TextureView, error) {
	if r.frameView != nil {
		return r.frameView, nil
	}

	if r.width == 0 || r.height == 0 {
		return nil, fmt.Errorf("surface not configured")
	}

	texture, err := r.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create view: %w", err)
	}

	r.frame, r.frameView = texture, view

	return view, nil
}

// Present shows the current frame. If the application did not draw a
// frame, an empty one cleared to ClearColor is presented instead. Waiting
// for the next vertical blank here limits the frame rate of the loop.
func (r *Renderer) Present() error {
	if r.width == 0 || r.height == 0 {
		// nothing to present into before the first configuration
		return nil
	}

	if r.frameView == nil {
		view, err := r.Frame()
		if err != nil {
			return err
		}

		if err := r.clear(view); err != nil {
			r.releaseFrame()
			return fmt.Errorf("clear frame: %w", err)
		}
	}

	r.Surface.Present()

	// the texture belongs to the surface after presenting
	r.frameView.Release()
	r.frame, r.frameView = nil, nil

	return nil
}

func (r *Renderer) clear(view *wgpu.TextureView) error {
	enc, err := r.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearFrame",
	})

	if err != nil {
		return err
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearFrame",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.ClearColor,
			},
		},
	})

	defer pass.Release()

	if err := pass.End(); err != nil {
		return err
	}

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearFrame"})
	if err != nil {
		return err
	}

	defer buf.Release()

	r.Queue.Submit(buf)

	return nil
}

func (r *Renderer) releaseFrame() {
	if r.frameView != nil {
		r.frameView.Release()
		r.frameView = nil
	}

	if r.frame != nil {
		r.frame.Release()
		r.frame = nil
	}
}

func (r *Renderer) Release() {
	r.releaseFrame()
	r.Context.Release()
}
