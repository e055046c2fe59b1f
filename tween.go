package sill

import (
	"github.com/tanema/gween"
	gwease "github.com/tanema/gween/ease"

	"github.com/phanxgames/sill/ease"
)

// Tween animates up to 4 channels of one window property toward target
// values over a fixed duration. Build one with MoveTask, ResizeTask,
// FadeTask, or ColorTask; the starting values are captured at
// construction and the easing selector is resolved once, there.
//
// Each Advance writes through the window's normal setters, so the
// matching dirty flag is raised and the driver's flush picks the change
// up. When the accumulated time reaches the duration the exact
// destination values are written, never the accumulated interpolation.
// A tween whose window has been closed completes immediately without
// writing.
type Tween struct {
	win    *Window
	tweens [4]*gween.Tween
	ends   [4]float64
	count  int
	write  func(vals [4]float64)
	done   bool
}

// Advance moves the tween forward by dt seconds.
func (t *Tween) Advance(dt float64) (bool, error) {
	if t.done {
		return true, nil
	}
	if t.win.Closed() {
		t.done = true
		return true, nil
	}

	var vals [4]float64
	all := true
	for i := 0; i < t.count; i++ {
		v, finished := t.tweens[i].Update(float32(dt))
		vals[i] = float64(v)
		if finished {
			vals[i] = t.ends[i]
		} else {
			all = false
		}
	}
	t.write(vals)
	t.done = all
	return t.done, nil
}

// tweenFunc adapts a normalized easing function to gween's
// time/begin/change/duration form.
func tweenFunc(fn ease.Func) gwease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		return b + c*float32(fn(float64(t/d)))
	}
}

func newTween(win *Window, duration float64, easing any, write func([4]float64), channels ...[2]float64) (*Tween, error) {
	fn, err := ease.Resolve(easing)
	if err != nil {
		return nil, err
	}
	gw := tweenFunc(fn)

	t := &Tween{win: win, write: write, count: len(channels)}
	for i, ch := range channels {
		t.tweens[i] = gween.New(float32(ch[0]), float32(ch[1]), float32(duration), gw)
		t.ends[i] = ch[1]
	}
	return t, nil
}

// MoveTask builds a task that moves the window to (x, y) over duration
// seconds. The easing selector is a name or an ease.Func.
func MoveTask(w *Window, x, y, duration float64, easing any) (*Tween, error) {
	pos := w.Position()
	return newTween(w, duration, easing,
		func(v [4]float64) { w.SetPosition(v[0], v[1]) },
		[2]float64{pos.X, x}, [2]float64{pos.Y, y})
}

// ResizeTask builds a task that resizes the window to width x height over
// duration seconds.
func ResizeTask(w *Window, width, height, duration float64, easing any) (*Tween, error) {
	size := w.Size()
	return newTween(w, duration, easing,
		func(v [4]float64) { w.SetSize(v[0], v[1]) },
		[2]float64{size.X, width}, [2]float64{size.Y, height})
}

// FadeTask builds a task that fades the window's opacity to the given
// value over duration seconds.
func FadeTask(w *Window, opacity, duration float64, easing any) (*Tween, error) {
	return newTween(w, duration, easing,
		func(v [4]float64) { w.SetOpacity(v[0]) },
		[2]float64{w.Opacity(), opacity})
}

// ColorTask builds a task that animates the window's background color to
// the given color over duration seconds. Channels interpolate
// independently and truncate to integers, so the midpoint of 0..255
// is 127.
func ColorTask(w *Window, c Color, duration float64, easing any) (*Tween, error) {
	from := w.Color()
	return newTween(w, duration, easing,
		func(v [4]float64) {
			w.SetColor(Color{
				clampByte(v[0]), clampByte(v[1]),
				clampByte(v[2]), clampByte(v[3]),
			})
		},
		[2]float64{float64(from.R), float64(c.R)},
		[2]float64{float64(from.G), float64(c.G)},
		[2]float64{float64(from.B), float64(c.B)},
		[2]float64{float64(from.A), float64(c.A)})
}

// clampByte truncates toward zero, clamping overshoot from back/elastic
// easing into the byte range.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
