package orion

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

// Profile is a running profile, Stop writes it to disk.
type Profile interface {
	Stop()
}

type noopProfile struct{}

func (noopProfile) Stop() {}

// StartProfile starts a cpu, mem or trace profile. An empty mode
// disables profiling.
func StartProfile(mode string) (Profile, error) {
	switch strings.ToLower(mode) {
	case "":
		return noopProfile{}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.NoShutdownHook), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.NoShutdownHook), nil
	case "trace":
		return profile.Start(profile.TraceProfile, profile.NoShutdownHook), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}
