package sill

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFPS is the target tick rate for the driver loops.
const DefaultFPS = 60.0

// Desktop owns the live-window registry and the frame-paced driver loop.
// Create one with [New] and open windows through it; there is no global
// instance.
//
// The registry tolerates concurrent use: the thread-based composition
// helpers run one driver per goroutine against the same Desktop, and each
// of those drivers flushes every live window. That fan-out is deliberate —
// instant writes (duration <= 0) made outside any task must still reach
// the host — and is safe because Apply is idempotent and per-window
// locked. Prefer the cooperative Parallel/Sequence tasks for fine-grained
// composition; reserve goroutine branches for coarse independent scripts.
type Desktop struct {
	// FPS is the target tick rate for Run and Loop. Pacing is best
	// effort: a tick that finishes early sleeps the remainder, a tick
	// that overruns is not caught up.
	FPS float64

	backend Backend

	mu       sync.Mutex
	windows  []*Window
	nextID   uint64
	lastTick time.Time
	delta    float64
	frames   uint64

	stop atomic.Bool
}

// New creates a Desktop driving the given backend.
func New(backend Backend) *Desktop {
	return &Desktop{
		FPS:      DefaultFPS,
		backend:  backend,
		lastTick: time.Now(),
	}
}

// Window opens a new window and registers it with the desktop. The window
// is rendered once immediately.
func (d *Desktop) Window(cfg WindowConfig) (*Window, error) {
	cfg = cfg.withDefaults()
	dev, err := d.backend.Open(cfg)
	if err != nil {
		return nil, err
	}

	w := &Window{
		desk:    d,
		dev:     dev,
		x:       cfg.X,
		y:       cfg.Y,
		w:       cfg.Width,
		h:       cfg.Height,
		color:   cfg.Color,
		opacity: cfg.Opacity,
		content: cfg.Content,
	}
	if err := dev.Render(w.renderState()); err != nil {
		dev.Close()
		return nil, err
	}

	d.mu.Lock()
	d.nextID++
	w.id = d.nextID
	d.windows = append(d.windows, w)
	d.mu.Unlock()
	return w, nil
}

// Windows returns a snapshot of the live windows.
func (d *Desktop) Windows() []*Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Window, len(d.windows))
	copy(out, d.windows)
	return out
}

func (d *Desktop) remove(w *Window) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, win := range d.windows {
		if win == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			return
		}
	}
}

// Clear closes all live windows.
func (d *Desktop) Clear() {
	for _, w := range d.Windows() {
		w.Close()
	}
}

// Screens describes the attached displays.
func (d *Desktop) Screens() []Screen {
	return d.backend.Screens()
}

// Stop requests that any running driver loop exit at its next tick.
func (d *Desktop) Stop() {
	d.stop.Store(true)
}

// DeltaTime returns the duration of the last tick in seconds.
func (d *Desktop) DeltaTime() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delta
}

// FrameCount returns the number of ticks processed.
func (d *Desktop) FrameCount() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Update runs one tick body by hand: pump host events, then flush every
// live window. It returns false once a stop has been requested, by
// [Desktop.Stop] or by the host. Run and Loop call this for you.
func (d *Desktop) Update() bool {
	d.mu.Lock()
	now := time.Now()
	dt := now.Sub(d.lastTick).Seconds()
	d.lastTick = now
	d.mu.Unlock()

	cont, err := d.update(dt)
	if err != nil {
		d.stop.Store(true)
		return false
	}
	return cont
}

// update is the shared tick body: stop check, event pump, flush of all
// live windows. dt comes from the calling driver's own clock so that
// concurrent drivers (the thread-based composition path) each see their
// full wall-time delta.
func (d *Desktop) update(dt float64) (bool, error) {
	if d.stop.Load() {
		return false, nil
	}

	if !d.backend.Pump() {
		d.stop.Store(true)
		return false, nil
	}

	d.mu.Lock()
	d.delta = dt
	d.frames++
	d.mu.Unlock()

	for _, w := range d.Windows() {
		if err := w.Apply(dt); err != nil {
			return false, err
		}
	}

	return !d.stop.Load(), nil
}

// Run drives the task to completion: each tick pumps host events, flushes
// every live window, then advances the task once, sleeping out the
// remainder of the 1/FPS interval. It returns nil when the task completes
// or a stop is requested, and the task's error if one of its advances
// fails.
//
// An interrupt (Ctrl-C) during Run is converted into a graceful stop; the
// previous signal disposition is restored before Run returns.
//
// A nil task runs the loop until a stop is requested.
func (d *Desktop) Run(task Task) error {
	restore := d.trapInterrupt()
	defer restore()

	fps := d.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Duration(float64(time.Second) / fps)
	lastTick := time.Now()

	for {
		start := time.Now()
		dt := start.Sub(lastTick).Seconds()
		lastTick = start

		cont, err := d.update(dt)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		if task != nil {
			done, err := task.Advance(dt)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}

		if elapsed := time.Since(start); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
}

// Loop runs the driver with no task attached, for open-ended interactive
// sessions. It returns when a stop is requested.
func (d *Desktop) Loop() error {
	return d.Run(nil)
}

// Close stops the loop, closes all windows, and releases the backend.
func (d *Desktop) Close() error {
	d.Stop()
	d.Clear()
	return d.backend.Close()
}

// trapInterrupt converts SIGINT into the stop flag for the duration of a
// driver loop. The returned func restores the prior signal disposition.
func (d *Desktop) trapInterrupt() func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigCh:
			d.Stop()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
