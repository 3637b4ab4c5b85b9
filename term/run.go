package term

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"alieninvasion/game"
)

// Screen is the part of tcell.Screen the runner needs
type Screen interface {
	CellWriter
	PollEvent() tcell.Event
	Show()
	Sync()
	HideCursor()
}

// Run plays g on screen until the player quits or ctx is cancelled.
// The screen must already be initialised; Run does not finalise it.
func Run(ctx context.Context, screen Screen, g *game.Game, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	settings := g.Settings()

	sink := NewSink(screen, settings.ScreenWidth, settings.ScreenHeight)
	input := NewInput(g.PlayButton().Center(), sink.ToPixel)

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(screen, done)

	ticker := time.NewTicker(time.Second / time.Duration(settings.TicksPerSecond))
	defer ticker.Stop()

	screen.HideCursor()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				sink.Resize()
				screen.Sync()
			}
			input.Handle(ev)

		case <-ticker.C:
			if err := g.Tick(input.Poll()); err != nil {
				if errors.Is(err, game.ErrQuit) {
					logger.Info("quit", "session", g.Session(), "high_score", g.Stats().HighScore)
					return nil
				}
				return err
			}

			g.Render(sink)
			screen.Show()
		}
	}
}

// pollEvents reads screen events on their own goroutine, since PollEvent blocks.
// The channel is closed once the screen is finalised or done is closed.
func pollEvents(screen Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
