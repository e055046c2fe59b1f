package sill

import "sync"

// Window is an animatable desktop window. Property setters update logical
// state immediately and raise a dirty flag; the expensive host
// synchronization is deferred to [Window.Apply], which the driver calls
// once per tick for every live window. Repeated applies with no pending
// changes are no-ops.
//
// Windows are safe for the coarse multi-goroutine composition helpers:
// every method takes the window's lock. Within the cooperative scheduler
// only one tick's work is ever in flight.
type Window struct {
	mu   sync.Mutex
	desk *Desktop
	dev  DeviceWindow
	id   uint64

	x, y, w, h float64
	color      Color
	opacity    float64
	content    Content

	positionDirty bool
	sizeDirty     bool
	opacityDirty  bool
	renderDirty   bool

	closed bool
}

// ID returns the window's unique identifier.
func (w *Window) ID() uint64 { return w.id }

// Position returns the logical position, which may be ahead of the host
// window until the next Apply.
func (w *Window) Position() Vec2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Vec2{w.x, w.y}
}

// Size returns the logical size.
func (w *Window) Size() Vec2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Vec2{w.w, w.h}
}

// Bounds returns the logical bounds.
func (w *Window) Bounds() Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Rect{w.x, w.y, w.w, w.h}
}

// Color returns the background color.
func (w *Window) Color() Color {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.color
}

// Opacity returns the logical opacity in [0, 1].
func (w *Window) Opacity() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opacity
}

// Content returns the window's content, or nil.
func (w *Window) Content() Content {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content
}

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// SetPosition moves the window. The host window moves on the next Apply.
func (w *Window) SetPosition(x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.x, w.y = x, y
	w.positionDirty = true
}

// SetSize resizes the window. The host window resizes on the next Apply.
func (w *Window) SetSize(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.w, w.h = width, height
	w.sizeDirty = true
}

// SetOpacity sets the opacity, clamped to [0, 1].
func (w *Window) SetOpacity(opacity float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.opacity = min(1, max(0, opacity))
	w.opacityDirty = true
}

// SetColor sets the background color and schedules a re-render.
func (w *Window) SetColor(c Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.color = c
	w.renderDirty = true
}

// SetContent replaces the window's content and schedules a re-render.
func (w *Window) SetContent(c Content) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.content = c
	w.renderDirty = true
}

// MarkDirty forces a re-render on the next Apply, for content mutated
// outside the setters.
func (w *Window) MarkDirty() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.renderDirty = true
}

// Apply flushes pending changes to the device window, in fixed order:
// position, size, opacity, content time advance, then at most one
// re-render. Each flush clears only its own flag. Apply on a closed
// window, or with nothing pending and no content change, does nothing.
func (w *Window) Apply(dt float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}

	if w.positionDirty {
		w.dev.SetPosition(int(w.x), int(w.y))
		w.positionDirty = false
	}

	if w.sizeDirty {
		w.dev.SetSize(int(w.w), int(w.h))
		w.sizeDirty = false
		// The device repaints its own geometry on SetSize; only content
		// that re-flows with the surface needs a re-render.
		if w.content != nil && w.content.SizeDependent() {
			w.renderDirty = true
		}
	}

	if w.opacityDirty {
		w.dev.SetOpacity(w.opacity)
		w.opacityDirty = false
	}

	if w.content != nil && dt > 0 {
		if w.content.Advance(dt) {
			w.renderDirty = true
		}
	}

	if w.renderDirty {
		if err := w.dev.Render(w.renderState()); err != nil {
			return err
		}
		w.renderDirty = false
	}
	return nil
}

func (w *Window) renderState() RenderState {
	return RenderState{
		Bounds:  Rect{w.x, w.y, w.w, w.h},
		Color:   w.color,
		Opacity: w.opacity,
		Content: w.content,
	}
}

// Close destroys the device window and removes the window from its
// desktop. Close is idempotent; animations still holding the window
// complete immediately without effect.
func (w *Window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.dev.Close()
	w.mu.Unlock()

	w.desk.remove(w)
}
