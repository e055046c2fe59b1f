package sill

// The blocking animation API. Each call builds a task and drives it to
// completion on the window's desktop, pumping host events and flushing
// every live window each tick. A duration of zero or less is a deliberate
// shortcut: the write is applied synchronously with no task or loop
// involved, and is flushed by whichever tick runs next.
//
// The easing argument is a name ("ease_out_cubic", in any case and with
// any separator) or an ease.Func; nil means linear. Unknown names are an
// error listing every valid name.

// Move moves the window to (x, y), blocking until done.
func Move(w *Window, x, y, duration float64, easing any) error {
	if duration <= 0 {
		w.SetPosition(x, y)
		return nil
	}
	task, err := MoveTask(w, x, y, duration, easing)
	if err != nil {
		return err
	}
	return w.desk.Run(task)
}

// MoveBy moves the window by a relative offset, blocking until done.
func MoveBy(w *Window, dx, dy, duration float64, easing any) error {
	pos := w.Position()
	return Move(w, pos.X+dx, pos.Y+dy, duration, easing)
}

// MoveAll moves every window to the same position in parallel, blocking
// until all arrive. All windows must belong to the same desktop.
func MoveAll(windows []*Window, x, y, duration float64, easing any) error {
	if len(windows) == 0 {
		return nil
	}
	if duration <= 0 {
		for _, w := range windows {
			w.SetPosition(x, y)
		}
		return nil
	}
	tasks := make([]Task, 0, len(windows))
	for _, w := range windows {
		task, err := MoveTask(w, x, y, duration, easing)
		if err != nil {
			return err
		}
		tasks = append(tasks, task)
	}
	return windows[0].desk.Run(Parallel(tasks...))
}

// Resize resizes the window to width x height, blocking until done.
func Resize(w *Window, width, height, duration float64, easing any) error {
	if duration <= 0 {
		w.SetSize(width, height)
		return nil
	}
	task, err := ResizeTask(w, width, height, duration, easing)
	if err != nil {
		return err
	}
	return w.desk.Run(task)
}

// ResizeBy resizes the window by a relative amount, blocking until done.
func ResizeBy(w *Window, dw, dh, duration float64, easing any) error {
	size := w.Size()
	return Resize(w, size.X+dw, size.Y+dh, duration, easing)
}

// Fade animates the window's opacity to the given value, blocking until
// done.
func Fade(w *Window, opacity, duration float64, easing any) error {
	if duration <= 0 {
		w.SetOpacity(opacity)
		return nil
	}
	task, err := FadeTask(w, opacity, duration, easing)
	if err != nil {
		return err
	}
	return w.desk.Run(task)
}

// FadeIn snaps the window to fully transparent, then fades it to fully
// opaque.
func FadeIn(w *Window, duration float64, easing any) error {
	w.SetOpacity(0)
	return Fade(w, 1, duration, easing)
}

// FadeOut fades the window to fully transparent.
func FadeOut(w *Window, duration float64, easing any) error {
	return Fade(w, 0, duration, easing)
}

// ColorTo animates the window's background color, blocking until done.
func ColorTo(w *Window, c Color, duration float64, easing any) error {
	if duration <= 0 {
		w.SetColor(c)
		return nil
	}
	task, err := ColorTask(w, c, duration, easing)
	if err != nil {
		return err
	}
	return w.desk.Run(task)
}

// Wait blocks for the given number of seconds while the driver keeps
// pumping events and flushing windows.
func (d *Desktop) Wait(seconds float64) error {
	return d.Run(Wait(seconds))
}
