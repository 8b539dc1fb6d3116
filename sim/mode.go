package sim

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the particle update model.
type Mode int

const (
	// ModeGravity integrates velocity under an inverse-square pull plus a
	// tangential swirl that grows near the core.
	ModeGravity Mode = iota
	// ModeSpiral advances polar angle and distance kinematically so particles
	// decay inward along a spiral.
	ModeSpiral
)

var modeNames = map[Mode]string{
	ModeGravity: "gravity",
	ModeSpiral:  "spiral",
}

// ParseMode maps a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown mode %q (want gravity or spiral)", name)
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m names a known model.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// UnmarshalText lets modes be written by name in config files.
func (m *Mode) UnmarshalText(text []byte) error { return m.Set(string(text)) }

// MarshalText is the inverse of UnmarshalText.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// DefaultParticles is the particle count a freshly mounted effect uses.
func (m Mode) DefaultParticles() int {
	if m == ModeSpiral {
		return 300
	}
	return 1000
}

// StarCount is the number of background stars; only the spiral look has them.
func (m Mode) StarCount() int {
	if m == ModeSpiral {
		return 200
	}
	return 0
}

// CoreFactor is the core radius as a fraction of the smaller surface side.
func (m Mode) CoreFactor() float64 {
	if m == ModeSpiral {
		return 0.06
	}
	return 0.05
}

// MinDistance is the distance from center below which a particle respawns.
func (m Mode) MinDistance(sf Surface) float64 {
	if m == ModeSpiral {
		return sf.CoreRadius * spiralMinFactor
	}
	return sf.CoreRadius
}

// ResizePolicy decides what happens to live particles when the surface changes size.
type ResizePolicy int

const (
	// ResizeKeep leaves particles where they are; they drift back into view
	// as they respawn.
	ResizeKeep ResizePolicy = iota
	// ResizeRescale moves particles about the new center by the width ratio.
	ResizeRescale
	// ResizeReseed throws the store away and seeds a new one.
	ResizeReseed
)

var resizeNames = map[ResizePolicy]string{
	ResizeKeep:    "keep",
	ResizeRescale: "rescale",
	ResizeReseed:  "reseed",
}

// ParseResizePolicy maps a policy name to a ResizePolicy.
func ParseResizePolicy(name string) (ResizePolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range resizeNames {
		if n == name {
			return p, nil
		}
	}
	return 0, errors.Errorf("unknown resize policy %q (want keep, rescale or reseed)", name)
}

func (p ResizePolicy) String() string {
	if n, ok := resizeNames[p]; ok {
		return n
	}
	return fmt.Sprintf("ResizePolicy(%d)", int(p))
}

// Valid reports whether p names a known policy.
func (p ResizePolicy) Valid() bool {
	_, ok := resizeNames[p]
	return ok
}

// Set implements pflag.Value.
func (p *ResizePolicy) Set(s string) error {
	v, err := ParseResizePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *ResizePolicy) Type() string { return "policy" }

// UnmarshalText lets policies be written by name in config files.
func (p *ResizePolicy) UnmarshalText(text []byte) error { return p.Set(string(text)) }

// MarshalText is the inverse of UnmarshalText.
func (p ResizePolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
