package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"eventhorizon/game"
	"eventhorizon/sim"
)

const windowTitle = "Beyond the Event Horizon"

// flagValues mirrors the config keys that can be overridden on the command line.
type flagValues struct {
	configPath string
	mode       sim.Mode
	resize     sim.ResizePolicy
	particles  int
	seed       int64
	noHero     bool
	debug      bool
	profileDir string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, _ := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command and the values its flags are bound to.
func newRootCmd() (*cobra.Command, *flagValues) {
	defaults := game.DefaultConfig()
	fv := &flagValues{mode: defaults.Mode, resize: defaults.Resize}

	cmd := &cobra.Command{
		Use:   "eventhorizon",
		Short: "Animated black hole particle effect",
		Long: `eventhorizon draws a black hole hero section: background stars, a dark core,
a glowing accretion ring and particles that swirl or spiral into it.`,
		Example: `  # Spiral look with the hero overlay
  eventhorizon

  # Free-body gravity, rescale particles on window resize
  eventhorizon --mode gravity --resize rescale

  # Settings from a file, debug overlay on
  eventhorizon --config eventhorizon.toml --debug`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), *fv)
			if err != nil {
				return err
			}
			setupLogging(cfg.Debug)
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fv.configPath, "config", "c", "", "Path to a TOML config file")
	f.Var(&fv.mode, "mode", "Particle model: gravity or spiral")
	f.Var(&fv.resize, "resize", "Resize policy: keep, rescale or reseed")
	f.IntVar(&fv.particles, "particles", 0, "Particle count (0 uses the model default)")
	f.Int64Var(&fv.seed, "seed", 0, "RNG seed (0 is time-based)")
	f.BoolVar(&fv.noHero, "no-hero", false, "Hide the heading, subtitle and button")
	f.BoolVarP(&fv.debug, "debug", "d", false, "Enable debug logging and the stats overlay")
	f.StringVar(&fv.profileDir, "profile-dir", "", "Write CPU profiles and traces here on frame rate drops")

	return cmd, fv
}

// resolveConfig starts from defaults, applies the config file and then any
// flag the user set explicitly.
func resolveConfig(flags *pflag.FlagSet, fv flagValues) (game.Config, error) {
	cfg := game.DefaultConfig()
	if fv.configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(fv.configPath); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("mode") {
		cfg.Mode = fv.mode
	}
	if flags.Changed("resize") {
		cfg.Resize = fv.resize
	}
	if flags.Changed("particles") {
		cfg.Particles = fv.particles
	}
	if flags.Changed("seed") {
		cfg.Seed = fv.seed
	}
	if flags.Changed("no-hero") {
		cfg.Hero = !fv.noHero
	}
	if flags.Changed("debug") {
		cfg.Debug = fv.debug
	}
	if flags.Changed("profile-dir") {
		cfg.ProfileDir = fv.profileDir
	}
	return cfg, cfg.Validate()
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func run(ctx context.Context, cfg game.Config) error {
	g := game.NewGame(ctx, cfg)
	defer g.Close()

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Debug("starting", "mode", cfg.Mode, "resize", cfg.Resize, "particles", cfg.Particles)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "running game")
	}
	return nil
}
