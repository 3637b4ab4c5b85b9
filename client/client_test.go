package client

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alieninvasion/assets"
	"alieninvasion/game"
)

var (
	_ game.RenderSink  = (*Renderer)(nil)
	_ game.InputSource = (*PlayerInput)(nil)
	_ ebiten.Game      = (*Client)(nil)
)

// fakeKeys is a scripted KeyState
type fakeKeys struct {
	held    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	clicked bool
	cursor  image.Point
}

func (f *fakeKeys) IsKeyPressed(key ebiten.Key) bool     { return f.held[key] }
func (f *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool { return f.pressed[key] }
func (f *fakeKeys) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return f.clicked && button == ebiten.MouseButtonLeft
}
func (f *fakeKeys) CursorPosition() (int, int) { return f.cursor.X, f.cursor.Y }

func TestPlayerInputPoll(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want game.Input
	}{
		{
			name: "idle",
			want: game.Input{},
		},
		{
			name: "held arrows move",
			keys: fakeKeys{held: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyArrowRight: true}},
			want: game.Input{MovingLeft: true, MovingRight: true},
		},
		{
			name: "held space does not fire",
			keys: fakeKeys{held: map[ebiten.Key]bool{ebiten.KeySpace: true}},
			want: game.Input{},
		},
		{
			name: "space press fires",
			keys: fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeySpace: true}},
			want: game.Input{Fire: true},
		},
		{
			name: "q quits",
			keys: fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyQ: true}},
			want: game.Input{Quit: true},
		},
		{
			name: "escape quits",
			keys: fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyEscape: true}},
			want: game.Input{Quit: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewPlayerInputFrom(&tt.keys).Poll()
			assert.Equal(t, tt.want, in)
		})
	}
}

func TestPlayerInputClick(t *testing.T) {
	keys := &fakeKeys{clicked: true, cursor: image.Pt(600, 400)}

	in := NewPlayerInputFrom(keys).Poll()
	require.NotNil(t, in.Click)
	assert.Equal(t, image.Pt(600, 400), *in.Click)

	keys.clicked = false
	assert.Nil(t, NewPlayerInputFrom(keys).Poll().Click)
}

func TestLayoutHUD(t *testing.T) {
	// Ten pixels per character, forty high
	measure := func(label string) (float64, float64) {
		return float64(10 * len(label)), 40
	}
	sb := game.Scoreboard{Score: "1250", HighScore: "12,340", Level: "3", ShipsLeft: 2}

	l := layoutHUD(sb, measure, 1200, 60)

	assert.Equal(t, image.Pt(1140, 20), l.Score)
	assert.Equal(t, image.Pt(570, 20), l.HighScore)
	assert.Equal(t, image.Pt(1170, 70), l.Level)
	assert.Equal(t, []image.Point{image.Pt(10, 10), image.Pt(70, 10)}, l.Ships)

	sb.ShipsLeft = 0
	assert.Empty(t, layoutHUD(sb, measure, 1200, 60).Ships)
}

func TestSVGToImage(t *testing.T) {
	sizes := game.DefaultSprites()

	for name, data := range map[string][]byte{"ship": assets.ShipSVG, "alien": assets.AlienSVG} {
		t.Run(name, func(t *testing.T) {
			size := sizes.Ship
			if name == "alien" {
				size = sizes.Alien
			}

			img, err := svgToImage(data, size)
			require.NoError(t, err)
			assert.Equal(t, size, img.Bounds().Size())

			// Something was painted
			opaque := 0
			for y := range size.Y {
				for x := range size.X {
					if img.RGBAAt(x, y).A > 0 {
						opaque++
					}
				}
			}
			assert.Positive(t, opaque)
		})
	}
}

func TestSVGToImageRejectsEmptySize(t *testing.T) {
	_, err := svgToImage(assets.ShipSVG, image.Pt(0, 10))
	assert.Error(t, err)
}

func TestProfilerCaptureSync(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p, err := NewProfiler(dir, nil)
	require.NoError(t, err)

	require.NoError(t, p.CaptureProfileSync("test", 50*time.Millisecond))
	assert.False(t, p.IsProfiling())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, filepath.Ext(e.Name()))
	}
	assert.ElementsMatch(t, []string{".prof", ".trace"}, names)
}

func TestProfilerObserveIgnoresWarmup(t *testing.T) {
	p, err := NewProfiler(t.TempDir(), nil)
	require.NoError(t, err)

	p.Observe(5, 60)
	assert.False(t, p.IsProfiling())
}
