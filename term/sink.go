// Package term plays the game in a terminal with tcell.
package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"alieninvasion/game"
)

// CellWriter is the part of tcell.Screen the sink draws through
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Glyphs used for each entity
const (
	shipGlyph   = '▲'
	bulletGlyph = '│'
	alienGlyph  = 'W'
	shipIcon    = '^'
)

// Sink draws frames as character cells, scaling game pixels to the terminal size.
// The top row is reserved for the scoreboard.
type Sink struct {
	screen CellWriter

	// Playfield size in pixels
	width, height int

	// Terminal size in cells, refreshed each frame
	cols, rows int

	background tcell.Style
}

// NewSink creates a sink for a playfield of the given pixel size
func NewSink(screen CellWriter, width, height int) *Sink {
	s := &Sink{screen: screen, width: width, height: height}
	s.Resize()
	return s
}

// Resize picks up the current terminal size
func (s *Sink) Resize() {
	s.cols, s.rows = s.screen.Size()
}

// toCells maps a pixel rectangle to the cells it covers, below the scoreboard row
func (s *Sink) toCells(r image.Rectangle) image.Rectangle {
	fieldRows := s.rows - 1
	if s.cols <= 0 || fieldRows <= 0 {
		return image.Rectangle{}
	}

	minX := r.Min.X * s.cols / s.width
	minY := r.Min.Y * fieldRows / s.height
	maxX := ceilDiv(r.Max.X*s.cols, s.width)
	maxY := ceilDiv(r.Max.Y*fieldRows, s.height)

	cells := image.Rect(minX, minY, max(maxX, minX+1), max(maxY, minY+1))
	return cells.Add(image.Pt(0, 1)).Intersect(image.Rect(0, 1, s.cols, s.rows))
}

// ToPixel maps a cell to the centre of the pixel area it covers
func (s *Sink) ToPixel(x, y int) image.Point {
	fieldRows := s.rows - 1
	if s.cols <= 0 || fieldRows <= 0 {
		return image.Point{}
	}
	return image.Pt(
		(2*x+1)*s.width/(2*s.cols),
		(2*(y-1)+1)*s.height/(2*fieldRows),
	)
}

// ceilDiv divides rounding up, for non-negative a
func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// fill paints every cell of r with ch
func (s *Sink) fill(r image.Rectangle, ch rune, style tcell.Style) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// print writes a string starting at (x, y), clipped to the screen
func (s *Sink) print(x, y int, str string, style tcell.Style) {
	for _, ch := range str {
		if x >= s.cols {
			return
		}
		if x >= 0 {
			s.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// rgb converts a colour to a tcell colour
func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Background clears the screen
func (s *Sink) Background(clr color.RGBA) {
	s.background = tcell.StyleDefault.Background(rgb(clr)).Foreground(tcell.ColorBlack)
	s.fill(image.Rect(0, 0, s.cols, s.rows), ' ', s.background)
}

// Ship draws the ship
func (s *Sink) Ship(rect image.Rectangle) {
	s.fill(s.toCells(rect), shipGlyph, s.background.Foreground(tcell.ColorBlue))
}

// Bullet draws a bullet
func (s *Sink) Bullet(rect image.Rectangle, clr color.RGBA) {
	s.fill(s.toCells(rect), bulletGlyph, s.background.Foreground(rgb(clr)))
}

// Alien draws an alien
func (s *Sink) Alien(rect image.Rectangle) {
	s.fill(s.toCells(rect), alienGlyph, s.background.Foreground(tcell.ColorGreen))
}

// Scoreboard writes the ship icons on the left, the high score in the middle
// and score and level on the right of the top row
func (s *Sink) Scoreboard(sb game.Scoreboard) {
	style := s.background.Bold(true)

	s.print(1, 0, strings.Repeat(string(shipIcon), sb.ShipsLeft), style)

	high := fmt.Sprintf("High %s", sb.HighScore)
	s.print(s.cols/2-len(high)/2, 0, high, style)

	right := fmt.Sprintf("Score %s  Level %s", sb.Score, sb.Level)
	s.print(s.cols-1-len(right), 0, right, style)
}

// PlayButton draws the button box with its label centred
func (s *Sink) PlayButton(b game.Button) {
	cells := s.toCells(b.Rect)
	style := tcell.StyleDefault.Background(rgb(b.Color)).Foreground(rgb(b.TextColor)).Bold(true)
	s.fill(cells, ' ', style)

	mid := cells.Min.Add(cells.Size().Div(2))
	s.print(mid.X-len(b.Label)/2, mid.Y, b.Label, style)
}
