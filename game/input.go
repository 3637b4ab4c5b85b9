package game

import "image"

// Input is the snapshot of player intents for one tick
type Input struct {
	// Quit exits immediately
	Quit bool

	// Fire is edge-triggered: true only on the tick the fire key goes down
	Fire bool

	// Movement intents, held for as long as the keys are down
	MovingLeft  bool
	MovingRight bool

	// Click is the pointer position of a click this tick, if any
	Click *image.Point
}

// InputSource produces one input snapshot per tick
type InputSource interface {
	Poll() Input
}

// ClickAt returns a pointer to p for use as Input.Click
func ClickAt(p image.Point) *image.Point {
	return &p
}
