package client

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"alieninvasion/game"
)

// HUD text styling
const (
	hudFontSize = 48
	hudMargin   = 20
	levelGap    = 10
	iconMargin  = 10
)

// hudTextColor is the colour of the scoreboard labels
var hudTextColor = color.RGBA{30, 30, 30, 255}

// newFace loads the HUD font
func newFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: hudFontSize}, nil
}

// measureFunc returns the width and height of a label
type measureFunc func(label string) (float64, float64)

// hudLayout holds the top-left position of each scoreboard element
type hudLayout struct {
	Score     image.Point
	HighScore image.Point
	Level     image.Point
	Ships     []image.Point
}

// layoutHUD places the score at the top right, the high score at the top centre,
// the level under the score and one ship icon per remaining life at the top left
func layoutHUD(sb game.Scoreboard, measure measureFunc, screenWidth, iconWidth int) hudLayout {
	var l hudLayout

	scoreW, scoreH := measure(sb.Score)
	l.Score = image.Pt(screenWidth-hudMargin-int(scoreW), hudMargin)

	highW, _ := measure(sb.HighScore)
	l.HighScore = image.Pt(screenWidth/2-int(highW)/2, hudMargin)

	levelW, _ := measure(sb.Level)
	l.Level = image.Pt(screenWidth-hudMargin-int(levelW), hudMargin+int(scoreH)+levelGap)

	for i := range sb.ShipsLeft {
		l.Ships = append(l.Ships, image.Pt(iconMargin+i*iconWidth, iconMargin))
	}

	return l
}
