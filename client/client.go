// Package client runs the simulation in an ebiten window.
package client

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"alieninvasion/game"
)

// Options configures a Client
type Options struct {
	// Autopilot, if set, drives the ship instead of the keyboard.
	// The quit key still works.
	Autopilot game.InputSource

	// Profiler, if set, captures profiles on tick rate drops
	Profiler *Profiler

	Logger *slog.Logger
}

// Client adapts a Game to the ebiten.Game interface
type Client struct {
	game     *game.Game
	input    game.InputSource
	renderer *Renderer
	opts     Options
	logger   *slog.Logger

	// Cursor mode last applied to the window
	cursorVisible bool
}

// New creates a client for g drawing with sprites
func New(g *game.Game, sprites *Sprites, opts Options) (*Client, error) {
	renderer, err := NewRenderer(sprites, g.Settings().ScreenWidth)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		game:          g,
		input:         NewPlayerInput(),
		renderer:      renderer,
		opts:          opts,
		logger:        logger,
		cursorVisible: true,
	}
	ebiten.SetTPS(g.Settings().TicksPerSecond)

	return c, nil
}

// Update advances the game by one tick
func (c *Client) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug := GetDebugState()
		debug.ShowHitboxes = !debug.ShowHitboxes
	}

	in := c.input.Poll()
	if c.opts.Autopilot != nil {
		auto := c.opts.Autopilot.Poll()
		auto.Quit = auto.Quit || in.Quit
		in = auto
	}

	if err := c.game.Tick(in); err != nil {
		if errors.Is(err, game.ErrQuit) {
			c.logger.Info("quit", "session", c.game.Session(), "high_score", c.game.Stats().HighScore)
			return ebiten.Termination
		}
		return err
	}

	c.syncCursor()

	if c.opts.Profiler != nil {
		c.opts.Profiler.Observe(ebiten.ActualTPS(), c.game.Settings().TicksPerSecond)
	}

	return nil
}

// syncCursor shows the pointer only while the game waits for the play button
func (c *Client) syncCursor() {
	visible := c.game.CursorVisible()
	if visible == c.cursorVisible {
		return
	}
	c.cursorVisible = visible

	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// Draw renders the current frame
func (c *Client) Draw(screen *ebiten.Image) {
	c.renderer.Begin(screen)
	c.game.Render(c.renderer)

	if GetDebugState().ShowHitboxes {
		c.drawDebugOverlay(screen)
	}
}

// Layout returns the fixed playfield size
func (c *Client) Layout(outsideWidth, outsideHeight int) (int, int) {
	settings := c.game.Settings()
	return settings.ScreenWidth, settings.ScreenHeight
}
