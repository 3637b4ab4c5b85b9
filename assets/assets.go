// Package assets embeds the sprite artwork.
package assets

import _ "embed"

// ShipSVG is the player ship, drawn in a 60x48 view box
//
//go:embed ship.svg
var ShipSVG []byte

// AlienSVG is a fleet alien, drawn in a 60x58 view box
//
//go:embed alien.svg
var AlienSVG []byte
