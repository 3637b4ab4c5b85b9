package term

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alieninvasion/game"
)

var _ game.RenderSink = (*Sink)(nil)

// fakeScreen records the runes written to each cell
type fakeScreen struct {
	cols, rows int
	cells      map[image.Point]rune
}

func newFakeScreen(cols, rows int) *fakeScreen {
	return &fakeScreen{cols: cols, rows: rows, cells: make(map[image.Point]rune)}
}

func (f *fakeScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	f.cells[image.Pt(x, y)] = primary
}

func (f *fakeScreen) Size() (int, int) { return f.cols, f.rows }

// row returns the runes of one screen row as a string
func (f *fakeScreen) row(y int) string {
	out := make([]rune, f.cols)
	for x := range out {
		out[x] = f.cells[image.Pt(x, y)]
	}
	return string(out)
}

// count returns how many cells hold ch
func (f *fakeScreen) count(ch rune) int {
	n := 0
	for _, r := range f.cells {
		if r == ch {
			n++
		}
	}
	return n
}

func TestSinkScalesToCells(t *testing.T) {
	// 120x41 cells over 1200x800 pixels: ten pixels per column, twenty per row
	s := NewSink(newFakeScreen(120, 41), 1200, 800)

	assert.Equal(t, image.Rect(57, 38, 63, 41), s.toCells(image.Rect(570, 752, 630, 800)))
	assert.Equal(t, image.Rect(59, 38, 61, 40), s.toCells(image.Rect(599, 752, 602, 767)))

	// Off the top is clipped away
	assert.True(t, s.toCells(image.Rect(0, -40, 3, -25)).Empty())

	assert.Equal(t, image.Pt(605, 10), s.ToPixel(60, 1))
}

func TestSinkDrawsFrame(t *testing.T) {
	screen := newFakeScreen(120, 41)
	g, err := game.NewGame(game.DefaultSettings(), game.DefaultSprites(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	s := NewSink(screen, 1200, 800)
	g.Render(s)

	// Ship covers 6x3 cells
	assert.Equal(t, 18, screen.count(shipGlyph))
	assert.Positive(t, screen.count(alienGlyph))

	top := screen.row(0)
	assert.Contains(t, top, "^^^")
	assert.Contains(t, top, "High 0")
	assert.Contains(t, top, "Score 0  Level 1")

	// Play button label sits in the middle of the screen
	assert.Contains(t, screen.row(21), "Play")
}

func TestSinkAlien(t *testing.T) {
	screen := newFakeScreen(120, 41)
	s := NewSink(screen, 1200, 800)

	// Pixel rows 58-116 straddle cell rows 2-5 of the playfield
	s.Alien(image.Rect(60, 58, 120, 116))
	assert.Equal(t, 6*4, screen.count(alienGlyph))
	assert.Equal(t, alienGlyph, screen.cells[image.Pt(6, 3)])
	assert.Equal(t, alienGlyph, screen.cells[image.Pt(11, 6)])
}

func TestSinkBullet(t *testing.T) {
	screen := newFakeScreen(120, 41)
	s := NewSink(screen, 1200, 800)

	s.Background(color.RGBA{230, 230, 230, 255})
	s.Bullet(image.Rect(599, 400, 602, 415), color.RGBA{60, 60, 60, 255})

	assert.Equal(t, 2, screen.count(bulletGlyph))
	assert.Equal(t, bulletGlyph, screen.cells[image.Pt(59, 21)])
}

// fakeClock is a settable time source
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestInput() (*Input, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	in := NewInput(image.Pt(600, 400), func(x, y int) image.Point {
		return image.Pt(x*10, y*20)
	})
	in.now = clock.now
	return in, clock
}

func TestInputHeldKeysExpire(t *testing.T) {
	in, clock := newTestInput()

	in.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.True(t, in.Poll().MovingLeft)

	clock.t = clock.t.Add(DefaultHold / 2)
	assert.True(t, in.Poll().MovingLeft)

	clock.t = clock.t.Add(DefaultHold)
	assert.False(t, in.Poll().MovingLeft)

	// Switching direction drops the other key at once
	in.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	in.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	p := in.Poll()
	assert.False(t, p.MovingLeft)
	assert.True(t, p.MovingRight)
}

func TestInputOneShots(t *testing.T) {
	in, _ := newTestInput()

	in.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	in.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	p := in.Poll()
	assert.True(t, p.Fire)
	require.NotNil(t, p.Click)
	assert.Equal(t, image.Pt(600, 400), *p.Click)

	// Cleared after one poll
	assert.Equal(t, game.Input{}, in.Poll())
}

func TestInputMouseClick(t *testing.T) {
	in, _ := newTestInput()

	in.Handle(tcell.NewEventMouse(30, 5, tcell.ButtonNone, tcell.ModNone))
	assert.Nil(t, in.Poll().Click)

	in.Handle(tcell.NewEventMouse(30, 5, tcell.Button1, tcell.ModNone))
	p := in.Poll()
	require.NotNil(t, p.Click)
	assert.Equal(t, image.Pt(300, 100), *p.Click)
}

func TestInputQuitKeys(t *testing.T) {
	events := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}

	for _, ev := range events {
		in, _ := newTestInput()
		in.Handle(ev)
		assert.True(t, in.Poll().Quit, ev.Name())
	}
}

func TestRunQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	g, err := game.NewGame(game.DefaultSettings(), game.DefaultSprites(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, Run(ctx, screen, g, slog.New(slog.DiscardHandler)))
}

// floodScreen never runs out of events
type floodScreen struct {
	*fakeScreen
}

func (f floodScreen) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
}

func (f floodScreen) Show()       {}
func (f floodScreen) Sync()       {}
func (f floodScreen) HideCursor() {}

func TestPollEventsStopsWhenDone(t *testing.T) {
	done := make(chan struct{})
	events := pollEvents(floodScreen{newFakeScreen(80, 24)}, done)

	// Let the buffer fill up with nobody reading
	require.Eventually(t, func() bool { return len(events) == cap(events) }, time.Second, time.Millisecond)
	close(done)

	for range 1000 {
		if _, ok := <-events; !ok {
			return
		}
	}
	t.Fatal("event reader kept running after done was closed")
}
