package orion

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultWindowConfig(t *testing.T) {
	want := WindowConfig{
		Width:  800,
		Height: 600,
		Title:  "Application",
	}

	if diff := cmp.Diff(want, DefaultApplication{}.Descriptor().WindowConfig()); diff != "" {
		t.Errorf("WindowConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptorWindowConfigFillsZeroValues(t *testing.T) {
	desc := Descriptor{WindowHeight: 480, Resizable: true}

	want := WindowConfig{
		Width:     800,
		Height:    480,
		Resizable: true,
		Title:     "Application",
	}

	if diff := cmp.Diff(want, desc.WindowConfig()); diff != "" {
		t.Errorf("WindowConfig() mismatch (-want +got):\n%s", diff)
	}
}
