package client

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures CPU profiles and traces when the tick rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	logger          *slog.Logger

	// TPS below this fraction of the target counts as a drop
	dropRatio float64

	// Drops are ignored until the game has warmed up
	startTime time.Time
	warmup    time.Duration
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, logger *slog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
		logger:          logger,
		dropRatio:       0.75,
		startTime:       time.Now(),
		warmup:          3 * time.Second,
	}, nil
}

// Observe starts a capture when the actual tick rate falls well below the target
func (p *Profiler) Observe(actualTPS float64, targetTPS int) {
	if time.Since(p.startTime) < p.warmup {
		return
	}
	if actualTPS >= float64(targetTPS)*p.dropRatio {
		return
	}

	if err := p.CaptureProfile(fmt.Sprintf("tps%.0f", actualTPS)); err != nil {
		p.logger.Debug("profile capture skipped", "error", err)
	}
}

// CaptureProfile captures a CPU profile and trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := captureName(reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		if err := p.capture(baseName, p.captureDuration); err != nil {
			p.logger.Error("profile capture failed", "error", err)
		}
	}()

	return nil
}

// CaptureProfileSync captures a CPU profile and trace, blocking until both are written
func (p *Profiler) CaptureProfileSync(reason string, duration time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.capture(captureName(reason), duration)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// captureName builds a timestamped file base name
func captureName(reason string) string {
	return fmt.Sprintf("tps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)
}

// capture records a CPU profile and an execution trace in parallel
func (p *Profiler) capture(baseName string, duration time.Duration) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error

	wg.Go(func() {
		cpuErr = p.captureCPUProfile(baseName, duration)
	})
	wg.Go(func() {
		traceErr = p.captureTrace(baseName, duration)
	})
	wg.Wait()

	if cpuErr != nil {
		return cpuErr
	}
	if traceErr != nil {
		return traceErr
	}

	p.logSummary(baseName)
	return nil
}

// captureCPUProfile captures a CPU profile
func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	return nil
}

// captureTrace captures an execution trace
func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()

	return nil
}

// logSummary logs where the capture went along with current memory stats
func (p *Profiler) logSummary(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	p.logger.Info("profile captured",
		"cpu_profile", filepath.Join(p.profilesDir, baseName+".cpu.prof"),
		"trace", filepath.Join(p.profilesDir, baseName+".trace"),
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects)
}
