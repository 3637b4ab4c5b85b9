package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugState holds global debug flags that persist across games
type DebugState struct {
	ShowHitboxes bool // Outline every bounding box and print frame stats
}

// Global debug state instance (persists across games)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// hitboxColor outlines bounding boxes in the debug overlay
var hitboxColor = color.RGBA{255, 0, 255, 255}

// drawDebugOverlay outlines the drawn boxes and prints timing and game info
func (c *Client) drawDebugOverlay(screen *ebiten.Image) {
	for _, box := range c.renderer.Boxes() {
		strokeRect(screen, box, hitboxColor)
	}

	stats := c.game.Stats()
	settings := c.game.Settings()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %0.1f  FPS: %0.1f\nsession: %s\naliens: %d  bullets: %d  paused: %t\nships: %d  level: %d\nalien speed: %.2f  points: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		c.game.Session(),
		c.game.AlienCount(), c.game.BulletCount(), c.game.Paused(),
		stats.ShipsLeft, stats.Level,
		settings.AlienSpeed, settings.AlienPoints,
	))
}
