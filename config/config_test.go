package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"snake-arcade/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 400, c.Game.Grid.Width)
	assert.Equal(t, 20, c.Game.Grid.CellSize)
	assert.Equal(t, 150*time.Millisecond, c.Game.InitialSpeed)
	assert.Equal(t, 5*time.Millisecond, c.Game.SpeedStep)
	assert.Equal(t, 50*time.Millisecond, c.Game.MinSpeed)
	assert.Equal(t, 10, c.Game.ScoreIncrement)
	assert.Equal(t, UIWindow, c.Host.UI)
	assert.True(t, c.Host.Sound)
}

func TestLoadFileOverridesOnlySetFields(t *testing.T) {
	path := writeConfig(t, `
grid {
  width  = 600
  height = 400
}

speed {
  initial = "200ms"
  min     = "40ms"
}

host {
  ui        = "terminal"
  sound     = false
  autopilot = true
  seed      = 12
  log_file  = "snake.log"
}
`)
	c := Default()
	require.NoError(t, c.LoadFile(path))
	require.NoError(t, c.Validate())

	assert.Equal(t, 600, c.Game.Grid.Width)
	assert.Equal(t, 400, c.Game.Grid.Height)
	assert.Equal(t, 20, c.Game.Grid.CellSize)
	assert.Equal(t, 200*time.Millisecond, c.Game.InitialSpeed)
	assert.Equal(t, 5*time.Millisecond, c.Game.SpeedStep)
	assert.Equal(t, 40*time.Millisecond, c.Game.MinSpeed)
	assert.Equal(t, 10, c.Game.ScoreIncrement)
	assert.Equal(t, UITerminal, c.Host.UI)
	assert.False(t, c.Host.Sound)
	assert.True(t, c.Host.Autopilot)
	assert.Equal(t, uint64(12), c.Host.Seed)
	assert.Equal(t, "snake.log", c.Host.LogFile)
}

func TestLoadFileBadDuration(t *testing.T) {
	path := writeConfig(t, `
speed {
  initial = "fast"
}
`)
	c := Default()
	err := c.LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadFileSyntaxError(t *testing.T) {
	path := writeConfig(t, `grid { width = }`)
	c := Default()
	assert.Error(t, c.LoadFile(path))
}

func TestLoadFileUnknownBlock(t *testing.T) {
	path := writeConfig(t, `maze { walls = 3 }`)
	c := Default()
	assert.Error(t, c.LoadFile(path))
}

func TestLoadFileMissing(t *testing.T) {
	c := Default()
	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "nope.hcl")))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"cell size":         func(c *Config) { c.Game.Grid.CellSize = 0 },
		"not a multiple":    func(c *Config) { c.Game.Grid.Width = 410 },
		"negative grid":     func(c *Config) { c.Game.Grid.Height = -20 },
		"zero speed":        func(c *Config) { c.Game.InitialSpeed = 0 },
		"negative step":     func(c *Config) { c.Game.SpeedStep = -time.Millisecond },
		"min above initial": func(c *Config) { c.Game.MinSpeed = time.Second },
		"negative score":    func(c *Config) { c.Game.ScoreIncrement = -1 },
		"start off grid":    func(c *Config) { c.Game.Grid = types.Grid{Width: 100, Height: 100, CellSize: 20} },
		"start misaligned":  func(c *Config) { c.Game.Start = []types.Cell{{X: 15, Y: 20}} },
		"start repeated":    func(c *Config) { c.Game.Start = []types.Cell{{X: 20, Y: 20}, {X: 20, Y: 20}} },
		"no direction":      func(c *Config) { c.Game.StartDirection = types.None },
		"ui":                func(c *Config) { c.Host.UI = "web" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
