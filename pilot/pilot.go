// Package pilot drives the ship with JavaScript decide(ctx) scripts run by goja.
package pilot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dop251/goja"

	"alieninvasion/game"
)

// ErrNoDecide is returned for scripts that do not define a decide function
var ErrNoDecide = errors.New("script must define a 'decide' function")

// DefaultBudget bounds how long one decide call may run
const DefaultBudget = 50 * time.Millisecond

// Pilot runs one script in its own JavaScript runtime.
// Globals declared by the script persist between decisions.
type Pilot struct {
	mu     sync.Mutex
	name   string
	vm     *goja.Runtime
	decide goja.Callable
	budget time.Duration

	// Whether fire was requested on the previous decision
	fireHeld bool
}

// New compiles and runs code, which must define decide(ctx)
func New(name, code string) (*Pilot, error) {
	program, err := goja.Compile(name, code, true)
	if err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	if _, err := vm.RunProgram(program); err != nil {
		return nil, fmt.Errorf("script execution failed: %w", err)
	}

	decide, ok := goja.AssertFunction(vm.Get("decide"))
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNoDecide)
	}

	return &Pilot{
		name:   name,
		vm:     vm,
		decide: decide,
		budget: DefaultBudget,
	}, nil
}

// Load returns a pilot for a built-in script name or a script file path
func Load(nameOrPath string) (*Pilot, error) {
	if code, ok := Builtin(nameOrPath); ok {
		return New(nameOrPath, code)
	}

	code, err := os.ReadFile(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return New(nameOrPath, string(code))
}

// Name returns the script name
func (p *Pilot) Name() string {
	return p.name
}

// SetBudget changes how long one decide call may run
func (p *Pilot) SetBudget(budget time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.budget = budget
}

// Decide asks the script for this tick's input
func (p *Pilot) Decide(g *game.Game) (game.Input, error) {
	decision, err := p.run(BuildContext(g))
	if err != nil {
		return game.Input{}, err
	}

	in := game.Input{
		Quit:        decision.Quit,
		Fire:        decision.Fire && !p.fireHeld,
		MovingLeft:  decision.Left,
		MovingRight: decision.Right,
	}
	p.fireHeld = decision.Fire

	if decision.Play {
		in.Click = game.ClickAt(g.PlayButton().Center())
	}

	return in, nil
}

// run calls decide with ctx and decodes its result
func (p *Pilot) run(ctx Context) (Decision, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Stop runaway scripts
	timer := time.AfterFunc(p.budget, func() {
		p.vm.Interrupt("decide exceeded its time budget")
	})
	defer func() {
		timer.Stop()
		p.vm.ClearInterrupt()
	}()

	result, err := p.decide(goja.Undefined(), p.vm.ToValue(ctx))
	if err != nil {
		return Decision{}, fmt.Errorf("decide function failed: %w", err)
	}

	// Round-trip through JSON so missing or loosely typed fields decode leniently
	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize result: %w", err)
	}

	var decision Decision
	if err := json.Unmarshal(resultJSON, &decision); err != nil {
		return Decision{}, fmt.Errorf("failed to parse script result: %w (result: %s)", err, string(resultJSON))
	}

	return decision, nil
}

// Source adapts a pilot to game.InputSource for g.
// Script errors are logged and produce an idle input.
func (p *Pilot) Source(g *game.Game, logger *slog.Logger) game.InputSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &source{pilot: p, game: g, logger: logger}
}

// source polls a pilot once per tick
type source struct {
	pilot  *Pilot
	game   *game.Game
	logger *slog.Logger
}

func (s *source) Poll() game.Input {
	in, err := s.pilot.Decide(s.game)
	if err != nil {
		s.logger.Warn("pilot decision failed", "script", s.pilot.Name(), "error", err)
		return game.Input{}
	}
	return in
}
