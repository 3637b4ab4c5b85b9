package client

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"alieninvasion/assets"
	"alieninvasion/game"
)

// Sprites holds the rasterised entity images
type Sprites struct {
	Ship  *ebiten.Image
	Alien *ebiten.Image
}

// LoadSprites rasterises the embedded SVG artwork at the given sizes.
// With DEBUG_SPRITES=1 the rasterised images are also written as PNG files.
func LoadSprites(sizes game.Sprites) (*Sprites, error) {
	ship, err := svgToImage(assets.ShipSVG, sizes.Ship)
	if err != nil {
		return nil, fmt.Errorf("failed to load ship sprite: %w", err)
	}
	alien, err := svgToImage(assets.AlienSVG, sizes.Alien)
	if err != nil {
		return nil, fmt.Errorf("failed to load alien sprite: %w", err)
	}

	if os.Getenv("DEBUG_SPRITES") == "1" {
		saveDebugPNG(ship, "debug_ship.png")
		saveDebugPNG(alien, "debug_alien.png")
	}

	return &Sprites{
		Ship:  ebiten.NewImageFromImage(ship),
		Alien: ebiten.NewImageFromImage(alien),
	}, nil
}

// Sizes returns the sprite dimensions the simulation should use
func (s *Sprites) Sizes() game.Sprites {
	return game.Sprites{
		Ship:  s.Ship.Bounds().Size(),
		Alien: s.Alien.Bounds().Size(),
	}
}

// svgToImage renders SVG data into an RGBA image of the given size
func svgToImage(svgData []byte, size image.Point) (*image.RGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("invalid sprite size %v", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size.X), float64(size.Y))

	img := image.NewRGBA(image.Rectangle{Max: size})
	scanner := rasterx.NewScannerGV(size.X, size.Y, img, img.Bounds())
	raster := rasterx.NewDasher(size.X, size.Y, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG writes an image to disk for inspection
func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		slog.Warn("failed to create debug png", "file", filename, "error", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		slog.Warn("failed to encode debug png", "file", filename, "error", err)
	}
}
