package orion

import "testing"

func TestStartProfileUnknownMode(t *testing.T) {
	if _, err := StartProfile("gpu"); err == nil {
		t.Fatal("StartProfile accepted mode gpu")
	}
}

func TestStartProfileDisabled(t *testing.T) {
	prof, err := StartProfile("")
	if err != nil {
		t.Fatalf("StartProfile(\"\") failed: %v", err)
	}

	prof.Stop()
}
