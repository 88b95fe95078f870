package glm

import "testing"

func TestVec2WithComponents(t *testing.T) {
	size := Vec2u{800, 600}

	if got := size.WithX(1024); got != (Vec2u{1024, 600}) {
		t.Errorf("WithX = %v, want [1024 600]", got)
	}

	if got := size.WithY(768); got != (Vec2u{800, 768}) {
		t.Errorf("WithY = %v, want [800 768]", got)
	}

	if size != (Vec2u{800, 600}) {
		t.Errorf("receiver was modified: %v", size)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2f{1.5, 2}
	b := Vec2f{0.5, 4}

	if x, y := a.Sub(b).XY(); x != 1 || y != -2 {
		t.Errorf("Sub = (%v, %v)", x, y)
	}
}
