package game

//go:generate go tool mockgen -destination=./mocks/render_sink_mock.go -package=mocks . RenderSink

import (
	"image"
	"image/color"
)

// RenderSink receives the drawing primitives of one frame
type RenderSink interface {
	// Background fills the whole playfield
	Background(clr color.RGBA)

	// Ship draws the player ship
	Ship(rect image.Rectangle)

	// Bullet draws one bullet
	Bullet(rect image.Rectangle, clr color.RGBA)

	// Alien draws one alien
	Alien(rect image.Rectangle)

	// Scoreboard draws score, high score, level and remaining ships
	Scoreboard(sb Scoreboard)

	// PlayButton draws the play button overlay
	PlayButton(b Button)
}

// Render emits the current frame to the sink in back-to-front order
func (g *Game) Render(sink RenderSink) {
	sink.Background(g.settings.BackgroundColor)
	sink.Ship(g.ship.Bounds())
	for bullet := range g.bullets.All() {
		sink.Bullet(bullet.Bounds(), bullet.Color())
	}
	for alien := range g.fleet.Aliens().All() {
		sink.Alien(alien.Bounds())
	}
	sink.Scoreboard(g.scoreboard)

	if !g.stats.Active {
		sink.PlayButton(g.playButton)
	}
}
