package sill

import (
	"errors"
	"testing"
)

// stepTask finishes after a fixed number of advances and records how many
// it received.
type stepTask struct {
	need     int
	advances int
}

func (s *stepTask) Advance(dt float64) (bool, error) {
	s.advances++
	return s.advances >= s.need, nil
}

func TestParallelEmptyIsDoneImmediately(t *testing.T) {
	done, err := Parallel().Advance(0.016)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("empty Parallel must be done on its first advance")
	}
}

func TestParallelPrunesFinishedChildren(t *testing.T) {
	short := &stepTask{need: 2}
	long := &stepTask{need: 5}
	p := Parallel(short, long)

	for i := 0; i < 5; i++ {
		done, err := p.Advance(0.016)
		if err != nil {
			t.Fatal(err)
		}
		if done != (i == 4) {
			t.Fatalf("advance %d: done = %v", i, done)
		}
	}

	// The short task completed on its second advance and was never
	// touched again.
	if short.advances != 2 {
		t.Errorf("short task advanced %d times, want 2", short.advances)
	}
	if long.advances != 5 {
		t.Errorf("long task advanced %d times, want 5", long.advances)
	}
}

func TestSequenceRunsStrictlyInOrder(t *testing.T) {
	a := &stepTask{need: 3}
	b := &stepTask{need: 2}
	s := Sequence(a, b)

	total := 0
	for {
		if b.advances > 0 && a.advances < a.need {
			t.Fatal("B advanced before A finished")
		}
		done, err := s.Advance(0.016)
		if err != nil {
			t.Fatal(err)
		}
		total++
		if done {
			break
		}
	}

	if total != a.need+b.need {
		t.Errorf("total advances = %d, want %d", total, a.need+b.need)
	}
	if a.advances != 3 || b.advances != 2 {
		t.Errorf("a=%d b=%d, want 3 and 2", a.advances, b.advances)
	}
}

func TestSequenceEmptyIsDoneImmediately(t *testing.T) {
	done, err := Sequence().Advance(0.016)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("empty Sequence must be done on its first advance")
	}
}

func TestCompositesNest(t *testing.T) {
	a := &stepTask{need: 2}
	b := &stepTask{need: 2}
	c := &stepTask{need: 1}
	// sequence(parallel(a, b), c)
	s := Sequence(Parallel(a, b), c)

	advances := 0
	for {
		done, err := s.Advance(0.016)
		if err != nil {
			t.Fatal(err)
		}
		advances++
		if done {
			break
		}
	}
	// Parallel(a, b) needs 2 advances, then c needs 1.
	if advances != 3 {
		t.Errorf("advances = %d, want 3", advances)
	}
	if c.advances != 1 {
		t.Errorf("c advanced %d times, want 1", c.advances)
	}
}

// failTask errors on its first advance.
type failTask struct{ err error }

func (f failTask) Advance(dt float64) (bool, error) { return false, f.err }

func TestChildErrorAbortsComposite(t *testing.T) {
	boom := errors.New("boom")
	sibling := &stepTask{need: 10}

	_, err := Parallel(sibling, failTask{boom}).Advance(0.016)
	if !errors.Is(err, boom) {
		t.Errorf("Parallel error = %v, want boom", err)
	}

	_, err = Sequence(failTask{boom}, sibling).Advance(0.016)
	if !errors.Is(err, boom) {
		t.Errorf("Sequence error = %v, want boom", err)
	}
}

func TestWaitConsumesItsDuration(t *testing.T) {
	w := Wait(0.1)
	for i := 0; i < 3; i++ {
		done, err := w.Advance(0.03)
		if err != nil {
			t.Fatal(err)
		}
		if done {
			t.Fatalf("done after %d advances of 0.03", i+1)
		}
	}
	done, err := w.Advance(0.03)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("Wait(0.1) should finish once 0.12s have accumulated")
	}
}

func TestTaskFuncAdapts(t *testing.T) {
	calls := 0
	task := TaskFunc(func(dt float64) (bool, error) {
		calls++
		return calls == 2, nil
	})
	if done, _ := task.Advance(0); done {
		t.Fatal("done too early")
	}
	if done, _ := task.Advance(0); !done {
		t.Fatal("not done after second advance")
	}
}
