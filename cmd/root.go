// Package cmd provides the command-line interface for the snake game.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-arcade/ai"
	"snake-arcade/audio"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/logging"
	"snake-arcade/ui"
	"snake-arcade/ui/terminal"
	"snake-arcade/ui/window"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

type options struct {
	configPath string
	ui         string
	autopilot  bool
	mute       bool
	volume     float64
	seed       uint64
	logFile    string
	debug      bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd(&options{})

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snake",
		Short: "Classic single-player snake in a window or a terminal.",
		Long: `Steer the snake with the arrow keys, WASD or hjkl. Eating food ` +
			`grows the snake, adds to the score and speeds the game up. ` +
			`Hitting a wall or the snake's own body ends the game.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd, cfg, opts.debug)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "HCL config file")
	f.StringVar(&opts.ui, "ui", config.UIWindow, "host to play in: window or terminal")
	f.BoolVar(&opts.autopilot, "autopilot", false, "let the Q-learning agent play and restart on game over")
	f.BoolVar(&opts.mute, "mute", false, "disable sound cues")
	f.Float64Var(&opts.volume, "volume", 0, "cue volume as a base-2 exponent, -1 halves it")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed for food placement, 0 uses the clock")
	f.StringVar(&opts.logFile, "log", "", "append logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "log at debug level")
	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// resolveConfig layers defaults, the config file and explicitly set flags
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		if err := cfg.LoadFile(opts.configPath); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("ui") {
		cfg.Host.UI = opts.ui
	}
	if f.Changed("autopilot") {
		cfg.Host.Autopilot = opts.autopilot
	}
	if f.Changed("mute") {
		cfg.Host.Sound = !opts.mute
	}
	if f.Changed("volume") {
		cfg.Host.Volume = opts.volume
	}
	if f.Changed("seed") {
		cfg.Host.Seed = opts.seed
	}
	if f.Changed("log") {
		cfg.Host.LogFile = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg config.Config, debug bool) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger, closer, err := logging.Open(cfg.Host.LogFile, level)
	if err != nil {
		return err
	}
	atexit.Register(func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
		}
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	seed := cfg.Host.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "ui", cfg.Host.UI, "seed", seed, "autopilot", cfg.Host.Autopilot)

	engine := game.NewEngine(cfg.Game, game.WithSeed(seed), game.WithLogger(logger))
	atexit.Register(engine.Close)

	player := newPlayer(cfg.Host, logger)
	atexit.Register(player.Close)
	engine.AddListener(audio.Cues{Player: player})

	session, pilot := newSession(cfg.Host, engine, seed, logger)
	if pilot != nil {
		atexit.Register(pilot.Stop)
		pilot.Start()
	}

	if err := runHost(ctx, cfg.Host.UI, session); err != nil {
		return err
	}

	stats := engine.Stats()
	logger.Info("session finished",
		"games", stats.GamesPlayed(),
		"best", stats.GetHighScore(),
		"average", stats.AverageScore())
	cmd.Printf("Games: %d  Best: %d\n", stats.GamesPlayed(), stats.GetHighScore())
	return nil
}

func newPlayer(h config.Host, logger *slog.Logger) audio.Player {
	if !h.Sound {
		return audio.Silent{}
	}
	b, err := audio.NewBeeper(h.Volume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Silent{}
	}
	return b
}

func newSession(h config.Host, engine *game.Engine, seed uint64, logger *slog.Logger) (*ui.Session, *ai.Autopilot) {
	if !h.Autopilot {
		return ui.NewSession(engine, nil), nil
	}
	pilot := ai.NewAutopilot(engine, ai.WithSeed(seed+1), ai.WithLogger(logger))
	engine.AddListener(pilot)
	return ui.NewSession(engine, pilot), pilot
}

func runHost(ctx context.Context, host string, session *ui.Session) error {
	switch host {
	case config.UITerminal:
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		t := terminal.New(ctx, screen, session)
		defer t.Close()
		return t.Run(ctx)
	default:
		return window.New(ctx, session).Run(ctx)
	}
}
