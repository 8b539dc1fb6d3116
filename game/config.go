package game

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"eventhorizon/sim"
)

// Config holds the effect configuration
type Config struct {
	// Mode selects the particle update model
	Mode sim.Mode `toml:"mode"`

	// Resize decides what happens to live particles when the window changes size
	Resize sim.ResizePolicy `toml:"resize"`

	// Particles overrides the mode's particle count when positive
	Particles int `toml:"particles"`

	// Seed feeds the particle RNG; zero picks a time-based seed
	Seed int64 `toml:"seed"`

	// Hero draws the heading, subtitle and button over the effect
	Hero bool `toml:"hero"`

	// Debug enables debug logging and the stats overlay
	Debug bool `toml:"debug"`

	// ProfileDir receives CPU profiles and traces on frame rate drops; empty disables
	ProfileDir string `toml:"profile_dir"`

	// ScreenWidth is the initial window width in logical pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the initial window height in logical pixels
	ScreenHeight int `toml:"screen_height"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Mode:         sim.ModeSpiral,
		Resize:       sim.ResizeKeep,
		Hero:         true,
		ScreenWidth:  1280,
		ScreenHeight: 720,
	}
}

// LoadConfig decodes a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("%s: unknown keys %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the effect cannot run with.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return errors.Errorf("invalid mode %v", c.Mode)
	}
	if !c.Resize.Valid() {
		return errors.Errorf("invalid resize policy %v", c.Resize)
	}
	if c.Particles < 0 {
		return errors.Errorf("particles must be >= 0, got %d", c.Particles)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}

// SimOptions is the part of the config the simulation reads.
func (c Config) SimOptions() sim.Options {
	return sim.Options{
		Mode:      c.Mode,
		Particles: c.Particles,
		Resize:    c.Resize,
	}
}
