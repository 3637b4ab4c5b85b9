package pilot

import (
	"image"

	"alieninvasion/game"
)

// Box is a bounding box as seen by scripts
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// boxOf converts a rectangle to a Box
func boxOf(r image.Rectangle) Box {
	return Box{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Context is passed to the script's decide function each tick
type Context struct {
	// Playfield
	Width  int `json:"width"`
	Height int `json:"height"`

	// Entities
	Ship    Box   `json:"ship"`
	Aliens  []Box `json:"aliens"`
	Bullets []Box `json:"bullets"`
	Button  Box   `json:"button"`

	// Current dynamic settings
	ShipSpeed      float64 `json:"shipSpeed"`
	BulletSpeed    float64 `json:"bulletSpeed"`
	AlienSpeed     float64 `json:"alienSpeed"`
	FleetDirection int     `json:"fleetDirection"`
	BulletsAllowed int     `json:"bulletsAllowed"`

	// Game state
	Active    bool   `json:"active"`
	Paused    bool   `json:"paused"`
	Score     int    `json:"score"`
	HighScore int    `json:"highScore"`
	Level     int    `json:"level"`
	ShipsLeft int    `json:"shipsLeft"`
	Tick      uint64 `json:"tick"`
}

// Decision is returned from the script's decide function
type Decision struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`

	// Fire is level-triggered here; the pilot turns it into presses
	Fire bool `json:"fire"`

	// Play clicks the play button
	Play bool `json:"play"`

	Quit bool `json:"quit"`
}

// BuildContext snapshots the game state for a script
func BuildContext(g *game.Game) Context {
	settings := g.Settings()
	stats := g.Stats()

	ctx := Context{
		Width:          settings.ScreenWidth,
		Height:         settings.ScreenHeight,
		Ship:           boxOf(g.Ship().Bounds()),
		Aliens:         make([]Box, 0, g.AlienCount()),
		Bullets:        make([]Box, 0, g.BulletCount()),
		Button:         boxOf(g.PlayButton().Rect),
		ShipSpeed:      settings.ShipSpeed,
		BulletSpeed:    settings.BulletSpeed,
		AlienSpeed:     settings.AlienSpeed,
		FleetDirection: settings.FleetDirection,
		BulletsAllowed: settings.BulletsAllowed,
		Active:         stats.Active,
		Paused:         g.Paused(),
		Score:          stats.Score,
		HighScore:      stats.HighScore,
		Level:          stats.Level,
		ShipsLeft:      stats.ShipsLeft,
		Tick:           g.Ticks(),
	}

	for alien := range g.Aliens() {
		ctx.Aliens = append(ctx.Aliens, boxOf(alien.Bounds()))
	}
	for bullet := range g.Bullets() {
		ctx.Bullets = append(ctx.Bullets, boxOf(bullet.Bounds()))
	}

	return ctx
}
