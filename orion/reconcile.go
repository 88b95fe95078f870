package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/appbase/glimpse"
	"github.com/oliverbestmann/appbase/glm"
)

// WindowHandle is the part of a window the reconciler writes to.
type WindowHandle interface {
	Size() (width, height uint32)
	SetSize(width, height uint32) error
	SetResizable(resizable bool) error
	SetTitle(title string) error
	EnterFullscreen(monitor glimpse.Monitor) error
	ExitFullscreen() error
}

type OpKind int

const (
	OpResize OpKind = iota
	OpEnterFullscreen
	OpExitFullscreen
	OpSetResizable
	OpSetTitle
)

func (k OpKind) String() string {
	switch k {
	case OpResize:
		return "Resize"
	case OpEnterFullscreen:
		return "EnterFullscreen"
	case OpExitFullscreen:
		return "ExitFullscreen"
	case OpSetResizable:
		return "SetResizable"
	case OpSetTitle:
		return "SetTitle"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a single call to make on a WindowHandle.
type Op struct {
	Kind OpKind

	// target size for OpResize
	Size glm.Vec2u

	// value for OpSetResizable
	Resizable bool

	// value for OpSetTitle
	Title string
}

func (op Op) LogValue() slog.Value {
	switch op.Kind {
	case OpResize:
		return slog.GroupValue(
			slog.String("kind", op.Kind.String()),
			slog.Int("width", int(op.Size[0])),
			slog.Int("height", int(op.Size[1])),
		)

	case OpSetResizable:
		return slog.GroupValue(
			slog.String("kind", op.Kind.String()),
			slog.Bool("resizable", op.Resizable),
		)

	case OpSetTitle:
		return slog.GroupValue(
			slog.String("kind", op.Kind.String()),
			slog.String("title", op.Title),
		)

	default:
		return slog.StringValue(op.Kind.String())
	}
}

// Plan computes the window calls needed to move a window from the previous
// to the current configuration. live is the size the window actually has
// right now. A single dimension change keeps the other dimension at its
// live value, so sizes changed by the user are not reverted.
//
// The resizable flag is always part of the plan, every other field only
// when it changed.
func Plan(previous, current WindowConfig, live glm.Vec2u) []Op {
	var ops []Op

	size := live

	// sizes first, a fullscreen transition changes the live size. A
	// fullscreen window keeps the size of its monitor, the desired size is
	// applied when leaving fullscreen.
	if current.Width != previous.Width && !previous.Fullscreen {
		size = size.WithX(current.Width)
		ops = append(ops, Op{Kind: OpResize, Size: size})
	}

	if current.Height != previous.Height && !previous.Fullscreen {
		size = size.WithY(current.Height)
		ops = append(ops, Op{Kind: OpResize, Size: size})
	}

	if current.Fullscreen != previous.Fullscreen {
		if current.Fullscreen {
			ops = append(ops, Op{Kind: OpEnterFullscreen})
		} else {
			// do not trust the platform to restore the windowed size
			ops = append(ops,
				Op{Kind: OpExitFullscreen},
				Op{Kind: OpResize, Size: glm.Vec2u{current.Width, current.Height}},
			)
		}
	}

	ops = append(ops, Op{Kind: OpSetResizable, Resizable: current.Resizable})

	if current.Title != previous.Title {
		ops = append(ops, Op{Kind: OpSetTitle, Title: current.Title})
	}

	return ops
}

// Apply executes the ops in order and stops at the first failing one.
func Apply(window WindowHandle, monitor glimpse.Monitor, ops []Op) error {
	for _, op := range ops {
		if op.Kind != OpSetResizable {
			slog.Debug("Apply window change", slog.Any("op", op))
		}

		var err error

		switch op.Kind {
		case OpResize:
			err = window.SetSize(op.Size[0], op.Size[1])
		case OpEnterFullscreen:
			err = window.EnterFullscreen(monitor)
		case OpExitFullscreen:
			err = window.ExitFullscreen()
		case OpSetResizable:
			err = window.SetResizable(op.Resizable)
		case OpSetTitle:
			err = window.SetTitle(op.Title)
		default:
			err = fmt.Errorf("unknown op %s", op.Kind)
		}

		if err != nil {
			return fmt.Errorf("apply %s: %w", op.Kind, err)
		}
	}

	return nil
}

// Reconcile applies the difference between previous and current to the window.
func Reconcile(window WindowHandle, monitor glimpse.Monitor, previous, current WindowConfig) error {
	width, height := window.Size()

	ops := Plan(previous, current, glm.Vec2u{width, height})
	return Apply(window, monitor, ops)
}
