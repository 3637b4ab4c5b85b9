package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"alieninvasion/game"
	"alieninvasion/pilot"
)

func main() {
	_ = godotenv.Load()

	ticks := flag.Int("ticks", 36000, "number of ticks to simulate")
	script := flag.String("script", "", "pilot script name or path (or set ALIEN_SCRIPT env var)")
	settingsPath := flag.String("settings", "", "TOML settings file (or set ALIEN_SETTINGS env var)")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	budget := flag.Duration("script-budget", pilot.DefaultBudget, "longest a single decide call may run")
	list := flag.Bool("list", false, "list the built-in scripts and exit")
	flag.Parse()

	if *list {
		for _, name := range pilot.Names() {
			fmt.Println(name)
		}
		return
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	path := *settingsPath
	if path == "" {
		path = os.Getenv("ALIEN_SETTINGS")
	}
	settings, err := game.LoadSettings(path)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	name := *script
	if name == "" {
		name = os.Getenv("ALIEN_SCRIPT")
	}
	if name == "" {
		name = "hunter"
	}
	p, err := pilot.Load(name)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	p.SetBudget(*budget)

	g, err := game.NewGame(settings, game.DefaultSprites(), logger)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	summary, err := run(g, p.Source(g, logger), *ticks)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	summary.Script = p.Name()

	fmt.Println(summary)
}

// Summary describes a headless run
type Summary struct {
	Script    string
	Ticks     int
	Games     int
	Waves     int
	Score     int
	HighScore int
	Elapsed   time.Duration
}

func (s Summary) String() string {
	return fmt.Sprintf("script=%s ticks=%d games=%d waves=%d score=%d high_score=%d elapsed=%s",
		s.Script, s.Ticks, s.Games, s.Waves, s.Score, s.HighScore, s.Elapsed.Round(time.Millisecond))
}

// run ticks g with input from src and tallies games and cleared waves
func run(g *game.Game, src game.InputSource, ticks int) (Summary, error) {
	start := time.Now()
	var summary Summary
	session := g.Session()
	level := g.Stats().Level

	for range ticks {
		err := g.Tick(src.Poll())
		summary.Ticks++
		if errors.Is(err, game.ErrQuit) {
			break
		}
		if err != nil {
			return summary, err
		}

		stats := g.Stats()
		if s := g.Session(); s != session {
			session = s
			summary.Games++
			level = stats.Level
		}
		if stats.Level > level {
			summary.Waves += stats.Level - level
			level = stats.Level
		}
	}

	stats := g.Stats()
	summary.Score = stats.Score
	summary.HighScore = stats.HighScore
	summary.Elapsed = time.Since(start)
	return summary, nil
}
