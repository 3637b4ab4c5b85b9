package term

import (
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"alieninvasion/game"
)

// DefaultHold is how long an arrow key counts as held after its last event.
// Terminals report key repeats but never releases.
const DefaultHold = 150 * time.Millisecond

// Input turns tcell events into per-tick input snapshots
type Input struct {
	// Held movement keys expire at these times
	leftUntil  time.Time
	rightUntil time.Time
	hold       time.Duration

	// Edge-triggered intents waiting for the next poll
	fire  bool
	quit  bool
	click *image.Point

	// play is where Enter clicks
	play image.Point

	// toPixel maps a mouse cell to a playfield pixel
	toPixel func(x, y int) image.Point

	now func() time.Time
}

// NewInput creates an input whose Enter key clicks at play
func NewInput(play image.Point, toPixel func(x, y int) image.Point) *Input {
	return &Input{
		hold:    DefaultHold,
		play:    play,
		toPixel: toPixel,
		now:     time.Now,
	}
}

// Handle records one terminal event
func (in *Input) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			p := in.toPixel(ev.Position())
			in.click = &p
		}
	}
}

func (in *Input) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		in.leftUntil = in.now().Add(in.hold)
		in.rightUntil = time.Time{}
	case tcell.KeyRight:
		in.rightUntil = in.now().Add(in.hold)
		in.leftUntil = time.Time{}
	case tcell.KeyEnter:
		in.click = game.ClickAt(in.play)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			in.fire = true
		case 'q', 'Q':
			in.quit = true
		case 'c':
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				in.quit = true
			}
		}
	}
}

// Poll returns the input for this tick and clears the one-shot intents
func (in *Input) Poll() game.Input {
	now := in.now()
	out := game.Input{
		Quit:        in.quit,
		Fire:        in.fire,
		MovingLeft:  now.Before(in.leftUntil),
		MovingRight: now.Before(in.rightUntil),
		Click:       in.click,
	}

	in.fire = false
	in.quit = false
	in.click = nil
	return out
}
