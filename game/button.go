package game

import (
	"image"
	"image/color"
)

// Button is a labelled rectangle that responds to pointer clicks
type Button struct {
	Rect      image.Rectangle
	Label     string
	Color     color.RGBA
	TextColor color.RGBA
}

// NewPlayButton creates the 200x50 Play button centred on the screen
func NewPlayButton(settings *Settings) Button {
	const width, height = 200, 50
	center := image.Pt(settings.ScreenWidth/2, settings.ScreenHeight/2)
	minPt := center.Sub(image.Pt(width/2, height/2))
	return Button{
		Rect:      image.Rectangle{Min: minPt, Max: minPt.Add(image.Pt(width, height))},
		Label:     "Play",
		Color:     color.RGBA{0, 255, 0, 255},
		TextColor: color.RGBA{255, 255, 255, 255},
	}
}

// Contains reports whether the point lies on the button
func (b Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}

// Center returns the middle of the button
func (b Button) Center() image.Point {
	return b.Rect.Min.Add(b.Rect.Size().Div(2))
}
