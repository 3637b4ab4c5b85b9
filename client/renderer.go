package client

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"alieninvasion/game"
)

// Renderer draws a frame onto an ebiten image
type Renderer struct {
	screen  *ebiten.Image
	sprites *Sprites
	face    *text.GoTextFace

	// Playfield width used to anchor the scoreboard
	screenWidth int

	// Every rectangle drawn this frame, for the hitbox overlay
	boxes []image.Rectangle
}

// NewRenderer creates a renderer for a playfield of the given width
func NewRenderer(sprites *Sprites, screenWidth int) (*Renderer, error) {
	face, err := newFace()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		sprites:     sprites,
		face:        face,
		screenWidth: screenWidth,
	}, nil
}

// Begin starts a new frame on screen
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.boxes = r.boxes[:0]
}

// Background fills the screen
func (r *Renderer) Background(clr color.RGBA) {
	r.screen.Fill(clr)
}

// Ship draws the ship sprite
func (r *Renderer) Ship(rect image.Rectangle) {
	r.drawSprite(r.sprites.Ship, rect.Min)
	r.boxes = append(r.boxes, rect)
}

// Bullet draws a filled bullet rectangle
func (r *Renderer) Bullet(rect image.Rectangle, clr color.RGBA) {
	fillRect(r.screen, rect, clr)
	r.boxes = append(r.boxes, rect)
}

// Alien draws the alien sprite
func (r *Renderer) Alien(rect image.Rectangle) {
	r.drawSprite(r.sprites.Alien, rect.Min)
	r.boxes = append(r.boxes, rect)
}

// Scoreboard draws the score labels and remaining ship icons
func (r *Renderer) Scoreboard(sb game.Scoreboard) {
	measure := func(label string) (float64, float64) {
		return text.Measure(label, r.face, r.face.Size)
	}
	layout := layoutHUD(sb, measure, r.screenWidth, r.sprites.Ship.Bounds().Dx())

	r.drawText(sb.Score, layout.Score, hudTextColor)
	r.drawText(sb.HighScore, layout.HighScore, hudTextColor)
	r.drawText(sb.Level, layout.Level, hudTextColor)
	for _, p := range layout.Ships {
		r.drawSprite(r.sprites.Ship, p)
	}
}

// PlayButton draws the button with its label centred
func (r *Renderer) PlayButton(b game.Button) {
	fillRect(r.screen, b.Rect, b.Color)

	w, h := text.Measure(b.Label, r.face, r.face.Size)
	center := b.Center()
	r.drawText(b.Label, image.Pt(center.X-int(w)/2, center.Y-int(h)/2), b.TextColor)
}

// Boxes returns the rectangles drawn this frame
func (r *Renderer) Boxes() []image.Rectangle {
	return r.boxes
}

// drawSprite draws an image with its top-left corner at p
func (r *Renderer) drawSprite(img *ebiten.Image, p image.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	r.screen.DrawImage(img, op)
}

// drawText draws a label with its top-left corner at p
func (r *Renderer) drawText(label string, p image.Point, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = r.face.Size
	text.Draw(r.screen, label, r.face, op)
}

// fillRect fills a rectangle with a solid colour
func fillRect(dst *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		clr, false)
}

// strokeRect outlines a rectangle
func strokeRect(dst *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.StrokeRect(dst,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		1, clr, false)
}
