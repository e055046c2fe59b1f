package sill

// Content is what a window displays on top of its background color.
// Decoding and drawing live in the backend; the core only tracks timing
// and change notification.
type Content interface {
	// Advance moves time-driven content forward by dt seconds and reports
	// whether the displayed frame changed. Static content returns false.
	Advance(dt float64) bool

	// SizeDependent reports whether the content must be rebuilt when the
	// window is resized (re-flowed text, for example). A size flush
	// forces a re-render for such content.
	SizeDependent() bool
}

// Text is static text content. It re-flows on resize, so it reports
// size-dependence; layout and glyph drawing are the backend's problem.
type Text struct {
	Text string
}

func (Text) Advance(dt float64) bool { return false }
func (Text) SizeDependent() bool     { return true }

// FrameLoop is time-driven frame-sequence content (a decoded GIF, a
// sprite flipbook). Frames are abstract: the loop owns per-frame delays
// and the current index, the backend owns the pixels.
type FrameLoop struct {
	delays  []float64
	current int
	elapsed float64

	// Playing, Loop, and Speed control playback. A non-looping sequence
	// stops on its last frame.
	Playing bool
	Loop    bool
	Speed   float64
}

// minFrameDelay replaces non-positive frame delays, matching the GIF
// convention for missing durations. It also keeps Advance's frame
// stepping finite: a looping sequence whose delays sum to zero would
// otherwise spin forever inside the driver tick.
const minFrameDelay = 0.1

// NewFrameLoop creates a playing, looping frame sequence with the given
// per-frame delays in seconds. Delays of zero or less are normalized to
// minFrameDelay.
func NewFrameLoop(delays []float64) *FrameLoop {
	ds := make([]float64, len(delays))
	for i, d := range delays {
		if d <= 0 {
			d = minFrameDelay
		}
		ds[i] = d
	}
	return &FrameLoop{
		delays:  ds,
		Playing: true,
		Loop:    true,
		Speed:   1,
	}
}

// Frame returns the current frame index.
func (f *FrameLoop) Frame() int { return f.current }

// SetFrame jumps to the given frame, clamped to the valid range.
func (f *FrameLoop) SetFrame(i int) {
	if len(f.delays) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(f.delays)-1 {
		i = len(f.delays) - 1
	}
	f.current = i
	f.elapsed = 0
}

// FrameCount returns the number of frames.
func (f *FrameLoop) FrameCount() int { return len(f.delays) }

// Duration returns the total length of one cycle in seconds.
func (f *FrameLoop) Duration() float64 {
	var total float64
	for _, d := range f.delays {
		total += d
	}
	return total
}

// Advance accumulates dt against the current frame's delay, stepping
// through as many frames as the elapsed time covers.
func (f *FrameLoop) Advance(dt float64) bool {
	if !f.Playing || len(f.delays) <= 1 {
		return false
	}

	old := f.current
	f.elapsed += dt * f.Speed

	for f.elapsed >= f.delays[f.current] {
		f.elapsed -= f.delays[f.current]
		f.current++

		if f.current >= len(f.delays) {
			if f.Loop {
				f.current = 0
			} else {
				f.current = len(f.delays) - 1
				f.Playing = false
				break
			}
		}
	}

	return f.current != old
}

func (f *FrameLoop) SizeDependent() bool { return false }
