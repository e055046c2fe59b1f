package sill

// Task is one unit of cooperative animation work. The driver calls
// Advance once per tick with the tick's delta time; the task does one
// tick's worth of work and reports whether it has completed. A finished
// task is discarded, never reused.
//
// Tween, Parallel, Sequence, and Wait all implement Task, and composites
// nest arbitrarily.
type Task interface {
	Advance(dt float64) (done bool, err error)
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func(dt float64) (bool, error)

func (f TaskFunc) Advance(dt float64) (bool, error) { return f(dt) }

type parallel struct {
	active []Task
}

// Parallel combines tasks into one that advances every still-active child
// once per tick. A child reporting done is pruned and never advanced
// again. The composite is done once no children remain, so a zero-task
// Parallel is done on its first advance. A child error aborts the whole
// composite.
func Parallel(tasks ...Task) Task {
	return &parallel{active: append([]Task(nil), tasks...)}
}

func (p *parallel) Advance(dt float64) (bool, error) {
	remaining := p.active[:0]
	for _, task := range p.active {
		done, err := task.Advance(dt)
		if err != nil {
			return false, err
		}
		if !done {
			remaining = append(remaining, task)
		}
	}
	p.active = remaining
	return len(p.active) == 0, nil
}

type sequence struct {
	pending []Task
}

// Sequence combines tasks into one that runs its children strictly one at
// a time, in order. Each advance goes only to the current head; when the
// head finishes it is dropped, and the next child starts on the following
// tick. The composite is done once no children remain.
func Sequence(tasks ...Task) Task {
	return &sequence{pending: append([]Task(nil), tasks...)}
}

func (s *sequence) Advance(dt float64) (bool, error) {
	if len(s.pending) == 0 {
		return true, nil
	}
	done, err := s.pending[0].Advance(dt)
	if err != nil {
		return false, err
	}
	if done {
		s.pending = s.pending[1:]
	}
	return len(s.pending) == 0, nil
}

type wait struct {
	remaining float64
}

// Wait returns a task that does nothing for the given number of seconds.
// Useful inside a Sequence to hold a pose between movements.
func Wait(seconds float64) Task {
	return &wait{remaining: seconds}
}

func (w *wait) Advance(dt float64) (bool, error) {
	w.remaining -= dt
	return w.remaining <= 0, nil
}
