package orion

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// LevelOff is above every level slog emits, it silences a handler.
const LevelOff = slog.Level(100)

func ParseLogLevel(value string) (slog.Level, error) {
	switch strings.ToUpper(value) {
	case "":
		return slog.LevelInfo, nil
	case "OFF":
		return LevelOff, nil
	case "ERROR":
		return slog.LevelError, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", value)
	}
}

// NewLogHandler creates a handler writing to w. With an empty format, text
// is used if w is a terminal and json otherwise.
func NewLogHandler(w io.Writer, level slog.Level, format string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{AddSource: true, Level: level}

	if format == "" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}

	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// ConfigureLogging installs the default slog logger based on the settings.
func ConfigureLogging(w io.Writer, settings Settings) error {
	level, err := ParseLogLevel(settings.Logging.Level)
	if err != nil {
		return err
	}

	handler, err := NewLogHandler(w, level, settings.Logging.Format)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func isTerminal(w io.Writer) bool {
	fp, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(fp.Fd()) || isatty.IsCygwinTerminal(fp.Fd())
}
