// Package config resolves game and host settings from defaults, an optional
// HCL file and command-line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	UIWindow   = "window"
	UITerminal = "terminal"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Game game.Config
	Host Host
}

// Host settings are read by the CLI and the UI layer only
type Host struct {
	UI        string
	Sound     bool
	Volume    float64 // beep volume exponent, 0 is unchanged
	Autopilot bool
	Seed      uint64 // 0 seeds from the wall clock
	LogFile   string
}

func Default() Config {
	return Config{
		Game: game.DefaultConfig(),
		Host: Host{
			UI:    UIWindow,
			Sound: true,
		},
	}
}

// hclFile mirrors the on-disk layout. Pointers distinguish unset from zero.
type hclFile struct {
	Grid  *hclGrid  `hcl:"grid,block"`
	Speed *hclSpeed `hcl:"speed,block"`
	Score *hclScore `hcl:"score,block"`
	Host  *hclHost  `hcl:"host,block"`
}

type hclGrid struct {
	Width    *int `hcl:"width,optional"`
	Height   *int `hcl:"height,optional"`
	CellSize *int `hcl:"cell_size,optional"`
}

type hclSpeed struct {
	Initial *string `hcl:"initial,optional"`
	Step    *string `hcl:"step,optional"`
	Min     *string `hcl:"min,optional"`
}

type hclScore struct {
	Increment *int `hcl:"increment,optional"`
}

type hclHost struct {
	UI        *string  `hcl:"ui,optional"`
	Sound     *bool    `hcl:"sound,optional"`
	Volume    *float64 `hcl:"volume,optional"`
	Autopilot *bool    `hcl:"autopilot,optional"`
	Seed      *int     `hcl:"seed,optional"`
	LogFile   *string  `hcl:"log_file,optional"`
}

// LoadFile overlays the HCL file at path onto c
func (c *Config) LoadFile(path string) error {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(f.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return c.apply(parsed)
}

func (c *Config) apply(f hclFile) error {
	if g := f.Grid; g != nil {
		setInt(&c.Game.Grid.Width, g.Width)
		setInt(&c.Game.Grid.Height, g.Height)
		setInt(&c.Game.Grid.CellSize, g.CellSize)
	}
	if s := f.Speed; s != nil {
		for _, d := range []struct {
			name string
			src  *string
			dst  *time.Duration
		}{
			{"initial", s.Initial, &c.Game.InitialSpeed},
			{"step", s.Step, &c.Game.SpeedStep},
			{"min", s.Min, &c.Game.MinSpeed},
		} {
			if d.src == nil {
				continue
			}
			v, err := time.ParseDuration(*d.src)
			if err != nil {
				return fmt.Errorf("%w: speed.%s: %v", ErrInvalid, d.name, err)
			}
			*d.dst = v
		}
	}
	if s := f.Score; s != nil {
		setInt(&c.Game.ScoreIncrement, s.Increment)
	}
	if h := f.Host; h != nil {
		if h.UI != nil {
			c.Host.UI = *h.UI
		}
		if h.Sound != nil {
			c.Host.Sound = *h.Sound
		}
		if h.Volume != nil {
			c.Host.Volume = *h.Volume
		}
		if h.Autopilot != nil {
			c.Host.Autopilot = *h.Autopilot
		}
		if h.Seed != nil {
			if *h.Seed < 0 {
				return fmt.Errorf("%w: host.seed must not be negative", ErrInvalid)
			}
			c.Host.Seed = uint64(*h.Seed)
		}
		if h.LogFile != nil {
			c.Host.LogFile = *h.LogFile
		}
	}
	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks the rules the engine relies on
func (c Config) Validate() error {
	g := c.Game.Grid
	switch {
	case g.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalid, g.CellSize)
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalid, g.Width, g.Height)
	case g.Width%g.CellSize != 0 || g.Height%g.CellSize != 0:
		return fmt.Errorf("%w: grid %dx%d is not a multiple of cell size %d", ErrInvalid, g.Width, g.Height, g.CellSize)
	}

	s := c.Game
	switch {
	case s.InitialSpeed <= 0 || s.MinSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case s.SpeedStep < 0:
		return fmt.Errorf("%w: speed step must not be negative", ErrInvalid)
	case s.MinSpeed > s.InitialSpeed:
		return fmt.Errorf("%w: min speed %v exceeds initial speed %v", ErrInvalid, s.MinSpeed, s.InitialSpeed)
	case s.ScoreIncrement < 0:
		return fmt.Errorf("%w: score increment must not be negative", ErrInvalid)
	}

	body := s.StartBody()
	seen := make(map[types.Cell]bool, len(body))
	for _, cell := range body {
		if !g.Contains(cell) {
			return fmt.Errorf("%w: start cell %+v outside %dx%d grid", ErrInvalid, cell, g.Width, g.Height)
		}
		if cell.X%g.CellSize != 0 || cell.Y%g.CellSize != 0 {
			return fmt.Errorf("%w: start cell %+v not aligned to cell size %d", ErrInvalid, cell, g.CellSize)
		}
		if seen[cell] {
			return fmt.Errorf("%w: start cell %+v repeated", ErrInvalid, cell)
		}
		seen[cell] = true
	}
	if s.StartDirection == types.None {
		return fmt.Errorf("%w: start direction not set", ErrInvalid)
	}

	switch c.Host.UI {
	case UIWindow, UITerminal:
	default:
		return fmt.Errorf("%w: unknown ui %q (want %s or %s)", ErrInvalid, c.Host.UI, UIWindow, UITerminal)
	}
	return nil
}
