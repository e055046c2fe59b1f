// Package term is a terminal backend for sill. Windows are composited as
// colored cell rectangles on a tcell screen, in the order they were
// opened. One terminal cell is one window unit.
//
// It exists so animation scripts can run (and be tested, via tcell's
// SimulationScreen) without a real windowing system. Opacity is simulated
// by scaling the window color toward the terminal background.
package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sill"
)

// Backend implements sill.Backend on a tcell screen. All methods are
// safe for concurrent use; events are consumed exactly once.
type Backend struct {
	mu      sync.Mutex
	screen  tcell.Screen
	windows []*deviceWindow
	stopped bool
}

// New creates a backend on the current terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an already-initialized screen. Tests pass a
// tcell.SimulationScreen here.
func NewWithScreen(screen tcell.Screen) *Backend {
	screen.Clear()
	return &Backend{screen: screen}
}

// Open creates a device window. Nothing is drawn until the first Render.
func (b *Backend) Open(cfg sill.WindowConfig) (sill.DeviceWindow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return nil, fmt.Errorf("term: backend closed")
	}
	dev := &deviceWindow{
		backend: b,
		x:       int(cfg.X),
		y:       int(cfg.Y),
		w:       int(cfg.Width),
		h:       int(cfg.Height),
		opacity: cfg.Opacity,
		color:   cfg.Color,
		content: cfg.Content,
		open:    true,
	}
	b.windows = append(b.windows, dev)
	return dev, nil
}

// Pump drains pending terminal events. Escape, Ctrl-C, and an interrupt
// event all request a stop.
func (b *Backend) Pump() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return false
	}
	for b.screen.HasPendingEvent() {
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return false
			}
		case *tcell.EventInterrupt:
			return false
		case *tcell.EventResize:
			b.screen.Sync()
		}
	}
	return true
}

// Screens reports the terminal as a single screen, sized in cells.
func (b *Backend) Screens() []sill.Screen {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, h := b.screen.Size()
	return []sill.Screen{{Width: w, Height: h}}
}

// Close finalizes the terminal.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return nil
	}
	b.stopped = true
	b.screen.Fini()
	return nil
}

// redraw recomposites every open window and flushes the screen.
// Called with b.mu held.
func (b *Backend) redraw() {
	b.screen.Clear()
	for _, dev := range b.windows {
		if dev.open {
			dev.draw(b.screen)
		}
	}
	b.screen.Show()
}

type deviceWindow struct {
	backend *Backend

	x, y, w, h int
	opacity    float64
	color      sill.Color
	content    sill.Content
	open       bool
}

func (d *deviceWindow) SetPosition(x, y int) {
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()
	d.x, d.y = x, y
	d.backend.redraw()
}

func (d *deviceWindow) SetSize(w, h int) {
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()
	d.w, d.h = w, h
	d.backend.redraw()
}

func (d *deviceWindow) SetOpacity(opacity float64) {
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()
	d.opacity = opacity
	d.backend.redraw()
}

func (d *deviceWindow) Render(state sill.RenderState) error {
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()
	d.color = state.Color
	d.content = state.Content
	d.backend.redraw()
	return nil
}

func (d *deviceWindow) Close() {
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()
	if !d.open {
		return
	}
	d.open = false
	for i, dev := range d.backend.windows {
		if dev == d {
			d.backend.windows = append(d.backend.windows[:i], d.backend.windows[i+1:]...)
			break
		}
	}
	d.backend.redraw()
}

// spinner glyphs stand in for frame-sequence content; the displayed glyph
// tracks the current frame index.
var spinner = []rune{'|', '/', '-', '\\'}

func (d *deviceWindow) draw(screen tcell.Screen) {
	bg := faded(d.color, d.opacity)
	style := tcell.StyleDefault.
		Background(bg).
		Foreground(contrast(d.color))

	fill := ' '
	if loop, ok := d.content.(*sill.FrameLoop); ok {
		fill = spinner[loop.Frame()%len(spinner)]
	}

	for row := 0; row < d.h; row++ {
		for col := 0; col < d.w; col++ {
			screen.SetContent(d.x+col, d.y+row, fill, nil, style)
		}
	}

	if text, ok := d.content.(sill.Text); ok {
		d.drawText(screen, text.Text, style)
	}
}

// drawText lays the string into the window rectangle, wrapping at the
// window width and clipping at its height. Re-flow on resize falls out of
// redrawing from current bounds.
func (d *deviceWindow) drawText(screen tcell.Screen, s string, style tcell.Style) {
	if d.w <= 0 {
		return
	}
	col, row := 0, 0
	for _, r := range s {
		if r == '\n' || col >= d.w {
			col, row = 0, row+1
			if r == '\n' {
				continue
			}
		}
		if row >= d.h {
			return
		}
		screen.SetContent(d.x+col, d.y+row, r, nil, style)
		col++
	}
}

// faded scales a color toward black, approximating opacity over a dark
// terminal background.
func faded(c sill.Color, opacity float64) tcell.Color {
	a := opacity * float64(c.A) / 255
	return tcell.NewRGBColor(
		int32(float64(c.R)*a),
		int32(float64(c.G)*a),
		int32(float64(c.B)*a),
	)
}

// contrast picks black or white foreground against the window color.
func contrast(c sill.Color) tcell.Color {
	// Rec. 601 luma.
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 140 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
