package game

import (
	"image"
	"image/color"
)

// Body is anything with an axis-aligned bounding box
type Body interface {
	Bounds() image.Rectangle
}

// Mover is a body that integrates its own motion once per tick
type Mover interface {
	Body
	Advance()
}

// Sprites holds the pixel dimensions of the entity sprites
type Sprites struct {
	Ship  image.Point
	Alien image.Point
}

// DefaultSprites returns the dimensions of the stock sprite artwork
func DefaultSprites() Sprites {
	return Sprites{
		Ship:  image.Pt(60, 48),
		Alien: image.Pt(60, 58),
	}
}

// Ship is the player-controlled ship
type Ship struct {
	settings *Settings

	// Bounding box; Min.X is the truncated exact position
	rect image.Rectangle

	// Exact horizontal position
	x float64

	// Movement intents for the current tick
	MovingLeft  bool
	MovingRight bool
}

// NewShip creates a ship centred at the bottom of the screen
func NewShip(settings *Settings, size image.Point) *Ship {
	s := &Ship{
		settings: settings,
		rect:     image.Rectangle{Max: size},
	}
	s.Center()
	return s
}

// Advance moves the ship by one tick according to its movement intents.
// Each edge check uses the box from before the move.
func (s *Ship) Advance() {
	if s.MovingRight && s.rect.Max.X < s.settings.ScreenWidth {
		s.x += s.settings.ShipSpeed
	}
	if s.MovingLeft && s.rect.Min.X > 0 {
		s.x -= s.settings.ShipSpeed
	}
	s.rect = s.rect.Add(image.Pt(int(s.x)-s.rect.Min.X, 0))
}

// Center places the ship at the middle of the bottom edge
func (s *Ship) Center() {
	size := s.rect.Size()
	minX := s.settings.ScreenWidth/2 - size.X/2
	s.rect = image.Rect(minX, s.settings.ScreenHeight-size.Y, minX+size.X, s.settings.ScreenHeight)
	s.x = float64(minX)
}

// Bounds returns the ship's bounding box
func (s *Ship) Bounds() image.Rectangle {
	return s.rect
}

// Bullet is a projectile fired upward from the ship
type Bullet struct {
	settings *Settings
	rect     image.Rectangle

	// Exact vertical position
	y float64
}

// NewBullet creates a bullet whose top edge sits at the middle of the ship's top edge
func NewBullet(settings *Settings, ship *Ship) *Bullet {
	top := ship.Bounds()
	midX := (top.Min.X + top.Max.X) / 2
	minX := midX - settings.BulletWidth/2
	return &Bullet{
		settings: settings,
		rect:     image.Rect(minX, top.Min.Y, minX+settings.BulletWidth, top.Min.Y+settings.BulletHeight),
		y:        float64(top.Min.Y),
	}
}

// Advance moves the bullet up by the current bullet speed
func (b *Bullet) Advance() {
	b.y -= b.settings.BulletSpeed
	b.rect = b.rect.Add(image.Pt(0, int(b.y)-b.rect.Min.Y))
}

// Bounds returns the bullet's bounding box
func (b *Bullet) Bounds() image.Rectangle {
	return b.rect
}

// Color returns the fill colour of the bullet
func (b *Bullet) Color() color.RGBA {
	return b.settings.BulletColor
}

// Alien is one member of the fleet
type Alien struct {
	settings *Settings
	rect     image.Rectangle

	// Exact horizontal position
	x float64
}

// NewAlien creates an alien at the top-left slot of the grid, one sprite size in from each edge
func NewAlien(settings *Settings, size image.Point) *Alien {
	return &Alien{
		settings: settings,
		rect:     image.Rectangle{Min: size, Max: size.Mul(2)},
		x:        float64(size.X),
	}
}

// Advance moves the alien sideways in the fleet's direction
func (a *Alien) Advance() {
	a.x += a.settings.AlienSpeed * float64(a.settings.FleetDirection)
	a.rect = a.rect.Add(image.Pt(int(a.x)-a.rect.Min.X, 0))
}

// CheckEdge reports whether the alien touches or passes a side of the screen
func (a *Alien) CheckEdge() bool {
	return a.rect.Max.X >= a.settings.ScreenWidth || a.rect.Min.X <= 0
}

// Drop moves the alien down by dy pixels
func (a *Alien) Drop(dy int) {
	a.rect = a.rect.Add(image.Pt(0, dy))
}

// Bounds returns the alien's bounding box
func (a *Alien) Bounds() image.Rectangle {
	return a.rect
}

// moveTo places the alien's top-left corner at (x, y)
func (a *Alien) moveTo(x, y int) {
	a.rect = a.rect.Add(image.Pt(x, y).Sub(a.rect.Min))
	a.x = float64(x)
}
