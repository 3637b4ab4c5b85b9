package game

import "image"

// Fleet builds the alien grid and steers it as one body
type Fleet struct {
	settings *Settings
	aliens   *Group[*Alien]

	// Sprite size of a single alien
	alienSize image.Point
}

// NewFleet creates an empty fleet for aliens of the given sprite size
func NewFleet(settings *Settings, alienSize image.Point) *Fleet {
	return &Fleet{
		settings:  settings,
		aliens:    NewGroup[*Alien](64),
		alienSize: alienSize,
	}
}

// Aliens returns the live aliens
func (f *Fleet) Aliens() *Group[*Alien] {
	return f.aliens
}

// gridSize returns how many columns and rows of aliens fit on screen
// above a ship of the given height
func gridSize(settings *Settings, alienSize image.Point, shipHeight int) (int, int) {
	w, h := alienSize.X, alienSize.Y

	availableX := settings.ScreenWidth - 2*w
	columns := availableX / (2 * w)

	availableY := settings.ScreenHeight - 3*h - shipHeight
	rows := availableY / (2 * h)

	return max(columns, 0), max(rows, 0)
}

// Build fills the grid with aliens, row by row
func (f *Fleet) Build(shipHeight int) {
	sample := NewAlien(f.settings, f.alienSize)
	size := sample.Bounds().Size()
	columns, rows := gridSize(f.settings, size, shipHeight)

	for row := range rows {
		for col := range columns {
			alien := NewAlien(f.settings, size)
			alien.moveTo(size.X+2*size.X*col, size.Y+2*size.Y*row)
			f.aliens.Add(alien)
		}
	}
}

// CheckEdges drops the fleet and reverses its direction if any alien is at an edge.
// At most one reversal happens per call.
func (f *Fleet) CheckEdges() bool {
	for alien := range f.aliens.All() {
		if alien.CheckEdge() {
			f.changeDirection()
			return true
		}
	}
	return false
}

// changeDirection drops every alien and flips the fleet direction
func (f *Fleet) changeDirection() {
	for alien := range f.aliens.All() {
		alien.Drop(f.settings.FleetDropSpeed)
	}
	f.settings.FleetDirection *= -1
}
