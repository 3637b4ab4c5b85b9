package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"alieninvasion/game"
	"alieninvasion/term"
)

func main() {
	_ = godotenv.Load()

	settingsPath := flag.String("settings", "", "TOML settings file (or set ALIEN_SETTINGS env var)")
	logFile := flag.String("log-file", "", "write logs to this file; the terminal is busy drawing")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	path := *settingsPath
	if path == "" {
		path = os.Getenv("ALIEN_SETTINGS")
	}
	settings, err := game.LoadSettings(path)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	g, err := game.NewGame(settings, game.DefaultSprites(), logger)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialise screen: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.Run(ctx, screen, g, logger)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatalf("Game failed: %v", err)
	}
}
