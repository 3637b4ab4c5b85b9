package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidSettings is returned when settings cannot produce a playable game
var ErrInvalidSettings = errors.New("invalid settings")

// Dynamic holds the settings that change while a game is running
type Dynamic struct {
	// Ship speed in pixels per tick
	ShipSpeed float64 `toml:"ship_speed"`

	// Bullet speed in pixels per tick
	BulletSpeed float64 `toml:"bullet_speed"`

	// Alien speed in pixels per tick
	AlienSpeed float64 `toml:"alien_speed"`

	// Fleet horizontal direction: 1 is right, -1 is left
	FleetDirection int `toml:"fleet_direction"`

	// Points awarded per alien
	AlienPoints int `toml:"alien_points"`
}

// Settings holds all game configuration
type Settings struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the playfield height in pixels
	ScreenHeight int `toml:"screen_height"`

	// BackgroundColor fills the playfield each frame
	BackgroundColor color.RGBA `toml:"background_color"`

	// ShipLimit is the number of lives per game
	ShipLimit int `toml:"ship_limit"`

	// Bullet geometry and cap
	BulletWidth    int        `toml:"bullet_width"`
	BulletHeight   int        `toml:"bullet_height"`
	BulletColor    color.RGBA `toml:"bullet_color"`
	BulletsAllowed int        `toml:"bullets_allowed"`

	// FleetDropSpeed is how far the fleet drops on each reversal
	FleetDropSpeed int `toml:"fleet_drop_speed"`

	// SpeedupScale multiplies all speeds on each wave clear
	SpeedupScale float64 `toml:"speedup_scale"`

	// ScoreScale multiplies the alien point value on each wave clear
	ScoreScale float64 `toml:"score_scale"`

	// HitPause is how long play freezes after losing a life
	HitPause time.Duration `toml:"hit_pause"`

	// TicksPerSecond is the simulation rate
	TicksPerSecond int `toml:"ticks_per_second"`

	// Baseline is restored into the current dynamic values on every new game
	Baseline Dynamic `toml:"dynamic"`

	// Current dynamic values
	Dynamic `toml:"-"`
}

// DefaultSettings returns the stock game configuration
func DefaultSettings() *Settings {
	s := &Settings{
		ScreenWidth:     1200,
		ScreenHeight:    800,
		BackgroundColor: color.RGBA{230, 230, 230, 255},
		ShipLimit:       3,
		BulletWidth:     3,
		BulletHeight:    15,
		BulletColor:     color.RGBA{60, 60, 60, 255},
		BulletsAllowed:  3,
		FleetDropSpeed:  5,
		SpeedupScale:    1.1,
		ScoreScale:      1.5,
		HitPause:        500 * time.Millisecond,
		TicksPerSecond:  60,
		Baseline: Dynamic{
			ShipSpeed:      1.5,
			BulletSpeed:    3.0,
			AlienSpeed:     1.0,
			FleetDirection: 1,
			AlienPoints:    50,
		},
	}
	s.ResetDynamic()
	return s
}

// LoadSettings overlays a TOML file on the default settings.
// An empty path returns the defaults.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("failed to decode settings %s: %w", path, err)
	}

	s.ResetDynamic()
	return s, nil
}

// ResetDynamic restores the dynamic settings to their baseline
func (s *Settings) ResetDynamic() {
	s.Dynamic = s.Baseline
}

// IncreaseSpeed escalates speeds and alien point value after a wave is cleared
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}

// PauseTicks returns the hit pause expressed in whole ticks
func (s *Settings) PauseTicks() int {
	return int(s.HitPause.Seconds() * float64(s.TicksPerSecond))
}

// Validate checks that the settings describe a playable game for the given sprites
func (s *Settings) Validate(sprites Sprites) error {
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return fmt.Errorf("screen %dx%d: %w", s.ScreenWidth, s.ScreenHeight, ErrInvalidSettings)
	case s.ShipLimit <= 0:
		return fmt.Errorf("ship limit %d: %w", s.ShipLimit, ErrInvalidSettings)
	case s.BulletsAllowed <= 0:
		return fmt.Errorf("bullets allowed %d: %w", s.BulletsAllowed, ErrInvalidSettings)
	case s.BulletWidth <= 0 || s.BulletHeight <= 0:
		return fmt.Errorf("bullet %dx%d: %w", s.BulletWidth, s.BulletHeight, ErrInvalidSettings)
	case s.SpeedupScale <= 1 || s.ScoreScale <= 1:
		return fmt.Errorf("scales %.2f/%.2f must exceed 1: %w", s.SpeedupScale, s.ScoreScale, ErrInvalidSettings)
	case s.Baseline.FleetDirection != 1 && s.Baseline.FleetDirection != -1:
		return fmt.Errorf("fleet direction %d: %w", s.Baseline.FleetDirection, ErrInvalidSettings)
	case s.TicksPerSecond <= 0:
		return fmt.Errorf("ticks per second %d: %w", s.TicksPerSecond, ErrInvalidSettings)
	case sprites.Ship.X <= 0 || sprites.Ship.Y <= 0 || sprites.Alien.X <= 0 || sprites.Alien.Y <= 0:
		return fmt.Errorf("sprites %v/%v: %w", sprites.Ship, sprites.Alien, ErrInvalidSettings)
	}

	columns, rows := gridSize(s, sprites.Alien, sprites.Ship.Y)
	if columns < 1 || rows < 1 {
		return fmt.Errorf("fleet grid %dx%d is empty: %w", columns, rows, ErrInvalidSettings)
	}
	return nil
}
