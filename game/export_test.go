package game

import "image"

// MoveTo places the alien's top-left corner at (x, y)
func (a *Alien) MoveTo(x, y int) {
	a.moveTo(x, y)
}

// X returns the ship's exact horizontal position
func (s *Ship) X() float64 {
	return s.x
}

// NewBulletAt creates a bullet with its top-left corner at (x, y)
func NewBulletAt(settings *Settings, x, y int) *Bullet {
	return &Bullet{
		settings: settings,
		rect:     image.Rect(x, y, x+settings.BulletWidth, y+settings.BulletHeight),
		y:        float64(y),
	}
}

// GridSize exposes the fleet grid formula
var GridSize = gridSize
