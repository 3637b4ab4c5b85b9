package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"alieninvasion/client"
	"alieninvasion/game"
	"alieninvasion/pilot"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	settingsPath := flag.String("settings", "", "TOML settings file (or set ALIEN_SETTINGS env var)")
	script := flag.String("script", "", "autopilot script name or path (or set ALIEN_SCRIPT env var)")
	profileDir := flag.String("profile-dir", "", "capture CPU profiles into this directory when the tick rate drops")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	slog.SetDefault(logger)

	path := *settingsPath
	if path == "" {
		path = os.Getenv("ALIEN_SETTINGS")
	}
	settings, err := game.LoadSettings(path)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	sprites, err := client.LoadSprites(game.DefaultSprites())
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	g, err := game.NewGame(settings, sprites.Sizes(), logger)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	opts := client.Options{Logger: logger}

	name := *script
	if name == "" {
		name = os.Getenv("ALIEN_SCRIPT")
	}
	if name != "" {
		p, err := pilot.Load(name)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		opts.Autopilot = p.Source(g, logger)
		logger.Info("autopilot enabled", "script", p.Name())
	}

	if *profileDir != "" {
		opts.Profiler, err = client.NewProfiler(*profileDir, logger)
		if err != nil {
			log.Fatalf("Failed to create profiler: %v", err)
		}
	}

	c, err := client.New(g, sprites, opts)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Alien Invasion")

	if err := ebiten.RunGame(c); err != nil {
		log.Fatal(err)
	}
}

// newLogger creates a text logger on stderr at the named level
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
