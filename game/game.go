package game

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"log/slog"

	"github.com/google/uuid"
)

// ErrQuit is returned from Tick when the player asks to quit
var ErrQuit = errors.New("quit requested")

// Game represents the simulation state
type Game struct {
	settings *Settings
	stats    *Stats
	logger   *slog.Logger

	// Player ship, created once and re-centred on respawn
	ship *Ship

	// Live bullets and the alien fleet
	bullets *Group[*Bullet]
	fleet   *Fleet

	// HUD and overlay
	scoreboard Scoreboard
	playButton Button

	// Ticks left in the post-hit pause
	pauseTicks int

	// Whether the pointer cursor should be shown
	cursorVisible bool

	// Identifier of the current game, empty before the first one
	session string

	// Number of ticks simulated while active
	ticks uint64
}

// NewGame creates an inactive game waiting for the play button.
// A nil logger uses slog.Default.
func NewGame(settings *Settings, sprites Sprites, logger *slog.Logger) (*Game, error) {
	if err := settings.Validate(sprites); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	settings.ResetDynamic()

	g := &Game{
		settings:      settings,
		stats:         NewStats(settings),
		logger:        logger,
		ship:          NewShip(settings, sprites.Ship),
		bullets:       NewGroup[*Bullet](settings.BulletsAllowed),
		fleet:         NewFleet(settings, sprites.Alien),
		playButton:    NewPlayButton(settings),
		cursorVisible: true,
	}

	g.fleet.Build(g.ship.Bounds().Dy())
	g.scoreboard.prepAll(g.stats)

	return g, nil
}

// Tick advances the simulation by one step
func (g *Game) Tick(in Input) error {
	if in.Quit {
		return ErrQuit
	}

	// Nothing moves and no input is read while the hit pause runs
	if g.pauseTicks > 0 {
		g.pauseTicks--
		return nil
	}

	if in.Click != nil {
		g.checkPlayButton(*in.Click)
	}

	if !g.stats.Active {
		return nil
	}
	g.ticks++

	if in.Fire {
		g.fireBullet()
	}

	g.ship.MovingLeft = in.MovingLeft
	g.ship.MovingRight = in.MovingRight
	g.ship.Advance()

	g.updateBullets()
	g.updateAliens()

	return nil
}

// checkPlayButton starts a new game when Play is clicked while inactive
func (g *Game) checkPlayButton(p image.Point) {
	if g.stats.Active || !g.playButton.Contains(p) {
		return
	}
	g.startGame()
}

// startGame resets the dynamic settings, statistics and playfield
func (g *Game) startGame() {
	g.settings.ResetDynamic()
	g.stats.Reset(g.settings)
	g.stats.Active = true
	g.scoreboard.prepAll(g.stats)

	g.fleet.Aliens().Clear()
	g.bullets.Clear()
	g.fleet.Build(g.ship.Bounds().Dy())
	g.ship.Center()

	g.cursorVisible = false
	g.session = uuid.NewString()
	g.logger.Info("game started",
		"session", g.session,
		"aliens", g.fleet.Aliens().Len(),
		"high_score", g.stats.HighScore)
}

// fireBullet adds a bullet unless the cap is reached
func (g *Game) fireBullet() {
	if g.bullets.Len() >= g.settings.BulletsAllowed {
		return
	}
	g.bullets.Add(NewBullet(g.settings, g.ship))
}

// updateBullets moves bullets, discards those off the top and resolves hits
func (g *Game) updateBullets() {
	g.bullets.AdvanceAll()
	g.bullets.RemoveFunc(func(b *Bullet) bool {
		return b.Bounds().Max.Y <= 0
	})

	g.checkBulletAlienCollisions()
}

// checkBulletAlienCollisions scores hits and starts the next wave once the fleet is gone
func (g *Game) checkBulletAlienCollisions() {
	hits := ResolveBulletAlien(g.bullets, g.fleet.Aliens())
	if len(hits) > 0 {
		for _, h := range hits {
			if g.stats.AddScore(g.settings.AlienPoints * len(h.Aliens)) {
				g.scoreboard.prepHighScore(g.stats)
				g.logger.Debug("new high score", "session", g.session, "high_score", g.stats.HighScore)
			}
		}
		g.scoreboard.prepScore(g.stats)
	}

	if g.fleet.Aliens().Empty() {
		g.bullets.Clear()
		g.fleet.Build(g.ship.Bounds().Dy())
		g.settings.IncreaseSpeed()
		g.stats.Level++
		g.scoreboard.prepLevel(g.stats)

		g.logger.Info("level cleared",
			"session", g.session,
			"level", g.stats.Level,
			"score", g.stats.Score,
			"alien_points", g.settings.AlienPoints)
	}
}

// updateAliens steers the fleet and checks whether it reached the ship
func (g *Game) updateAliens() {
	g.fleet.CheckEdges()
	g.fleet.Aliens().AdvanceAll()

	switch {
	case ShipCollides(g.ship, g.fleet.Aliens()):
		g.shipHit("collision")
	case AliensReachedBottom(g.fleet.Aliens(), g.settings.ScreenHeight):
		g.shipHit("bottom")
	}
}

// shipHit spends a life; losing the last one ends the game at once
func (g *Game) shipHit(cause string) {
	if g.stats.ShipsLeft > 0 {
		g.stats.ShipsLeft--
	}
	g.scoreboard.prepShips(g.stats)

	if g.stats.ShipsLeft == 0 {
		g.stats.Active = false
		g.cursorVisible = true
		g.logger.Info("game over",
			"session", g.session,
			"cause", cause,
			"score", g.stats.Score,
			"level", g.stats.Level,
			"high_score", g.stats.HighScore)
		return
	}

	g.fleet.Aliens().Clear()
	g.bullets.Clear()
	g.fleet.Build(g.ship.Bounds().Dy())
	g.ship.Center()
	g.pauseTicks = g.settings.PauseTicks()

	g.logger.Info("ship hit",
		"session", g.session,
		"cause", cause,
		"ships_left", g.stats.ShipsLeft)
}

// Stats returns a copy of the current statistics
func (g *Game) Stats() Stats {
	return *g.stats
}

// Settings returns the live settings
func (g *Game) Settings() *Settings {
	return g.settings
}

// Ship returns the player ship
func (g *Game) Ship() *Ship {
	return g.ship
}

// Bullets iterates the live bullets
func (g *Game) Bullets() iter.Seq[*Bullet] {
	return g.bullets.All()
}

// BulletCount returns the number of live bullets
func (g *Game) BulletCount() int {
	return g.bullets.Len()
}

// Aliens iterates the live aliens
func (g *Game) Aliens() iter.Seq[*Alien] {
	return g.fleet.Aliens().All()
}

// AlienCount returns the number of live aliens
func (g *Game) AlienCount() int {
	return g.fleet.Aliens().Len()
}

// Scoreboard returns the prepared HUD labels
func (g *Game) Scoreboard() Scoreboard {
	return g.scoreboard
}

// PlayButton returns the play button
func (g *Game) PlayButton() Button {
	return g.playButton
}

// Paused reports whether the post-hit pause is running
func (g *Game) Paused() bool {
	return g.pauseTicks > 0
}

// CursorVisible reports whether the front-end should show the pointer
func (g *Game) CursorVisible() bool {
	return g.cursorVisible
}

// Session returns the identifier of the current or last game
func (g *Game) Session() string {
	return g.session
}

// Ticks returns the number of active ticks simulated so far
func (g *Game) Ticks() uint64 {
	return g.ticks
}
