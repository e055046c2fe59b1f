package sill

import "testing"

func TestTextIsStatic(t *testing.T) {
	txt := Text{Text: "hello"}
	if txt.Advance(10) {
		t.Error("static text reported a frame change")
	}
	if !txt.SizeDependent() {
		t.Error("text must re-flow on resize")
	}
}

func TestFrameLoopSteps(t *testing.T) {
	f := NewFrameLoop([]float64{0.1, 0.1, 0.1})

	if f.Advance(0.05) {
		t.Error("changed before the first delay elapsed")
	}
	if !f.Advance(0.05) {
		t.Error("no change after the first delay elapsed")
	}
	if f.Frame() != 1 {
		t.Errorf("frame = %d, want 1", f.Frame())
	}

	// A large dt steps through several frames at once.
	f.Advance(0.2)
	if f.Frame() != 0 {
		t.Errorf("frame after wrap = %d, want 0", f.Frame())
	}
}

func TestFrameLoopStopsWithoutLoop(t *testing.T) {
	f := NewFrameLoop([]float64{0.1, 0.1})
	f.Loop = false

	f.Advance(0.5)
	if f.Frame() != 1 {
		t.Errorf("frame = %d, want last", f.Frame())
	}
	if f.Playing {
		t.Error("non-looping sequence should stop on its last frame")
	}
	if f.Advance(1) {
		t.Error("stopped sequence reported a change")
	}
}

func TestFrameLoopSpeedScalesTime(t *testing.T) {
	f := NewFrameLoop([]float64{0.1, 0.1, 0.1})
	f.Speed = 2

	f.Advance(0.05)
	if f.Frame() != 1 {
		t.Errorf("frame = %d, want 1 at double speed", f.Frame())
	}
}

func TestFrameLoopSetFrameClamps(t *testing.T) {
	f := NewFrameLoop([]float64{0.1, 0.1, 0.1})

	f.SetFrame(99)
	if f.Frame() != 2 {
		t.Errorf("frame = %d, want clamped to 2", f.Frame())
	}
	f.SetFrame(-1)
	if f.Frame() != 0 {
		t.Errorf("frame = %d, want clamped to 0", f.Frame())
	}
}

func TestFrameLoopMetadata(t *testing.T) {
	f := NewFrameLoop([]float64{0.1, 0.2, 0.3})
	if f.FrameCount() != 3 {
		t.Errorf("FrameCount = %d", f.FrameCount())
	}
	if d := f.Duration(); d < 0.599 || d > 0.601 {
		t.Errorf("Duration = %g, want 0.6", d)
	}
	if f.SizeDependent() {
		t.Error("frame loops do not depend on window size")
	}
}

func TestFrameLoopSingleFrameNeverChanges(t *testing.T) {
	f := NewFrameLoop([]float64{0.1})
	if f.Advance(10) {
		t.Error("single-frame loop reported a change")
	}
}

func TestFrameLoopNormalizesZeroDelays(t *testing.T) {
	// Zero-duration frames happen in real GIFs; they must not stall the
	// stepping loop. Advance has to return, with the delays floored.
	f := NewFrameLoop([]float64{0, 0})
	if f.Advance(0.016) {
		t.Error("changed before the normalized delay elapsed")
	}
	if !f.Advance(0.1) {
		t.Error("no change after the normalized delay elapsed")
	}
	if f.Frame() != 1 {
		t.Errorf("frame = %d, want 1", f.Frame())
	}
	if d := f.Duration(); d < 0.199 || d > 0.201 {
		t.Errorf("Duration = %g, want 0.2 after normalization", d)
	}

	neg := NewFrameLoop([]float64{-1, 0.3})
	if d := neg.Duration(); d < 0.399 || d > 0.401 {
		t.Errorf("Duration = %g, want 0.4 after normalization", d)
	}
}

func TestFrameLoopEmptyIsInert(t *testing.T) {
	f := NewFrameLoop(nil)
	if f.Advance(1) {
		t.Error("empty loop reported a change")
	}
	f.SetFrame(3)
	if f.Frame() != 0 {
		t.Errorf("frame = %d, want 0", f.Frame())
	}
}
