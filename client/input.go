package client

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"alieninvasion/game"
)

// KeyState reads the keyboard and mouse
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	CursorPosition() (int, int)
}

// ebitenKeys reads input state from ebiten
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenKeys) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenKeys) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// Key bindings
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight}
	fireKeys  = []ebiten.Key{ebiten.KeySpace}
	quitKeys  = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// PlayerInput provides input from the keyboard and mouse
type PlayerInput struct {
	keys KeyState
}

// NewPlayerInput creates a player input reading from ebiten
func NewPlayerInput() *PlayerInput {
	return NewPlayerInputFrom(ebitenKeys{})
}

// NewPlayerInputFrom creates a player input over any key state
func NewPlayerInputFrom(keys KeyState) *PlayerInput {
	return &PlayerInput{keys: keys}
}

// Poll returns the intents for this tick.
// Movement follows held keys, fire and clicks only their first frame.
func (p *PlayerInput) Poll() game.Input {
	in := game.Input{
		Quit:        slices.ContainsFunc(quitKeys, p.keys.IsKeyJustPressed),
		Fire:        slices.ContainsFunc(fireKeys, p.keys.IsKeyJustPressed),
		MovingLeft:  slices.ContainsFunc(leftKeys, p.keys.IsKeyPressed),
		MovingRight: slices.ContainsFunc(rightKeys, p.keys.IsKeyPressed),
	}

	if p.keys.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Click = game.ClickAt(image.Pt(p.keys.CursorPosition()))
	}

	return in
}
