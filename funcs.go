package sill

import "golang.org/x/sync/errgroup"

// ParallelFuncs runs each branch on its own goroutine and joins them all
// before returning, with the first error (if any). Each branch typically
// makes blocking animation calls, so each runs an independent driver loop
// against the shared desktop.
//
// This is the coarse composition mechanism: branches reach the same final
// window states as the cooperative Parallel task, but nothing about their
// interleaving is guaranteed — only the join point is synchronized, and
// every branch's driver flushes all live windows, not just its own.
// Prefer Parallel over tasks for fine-grained work; reserve this for
// independent top-level scripts.
func ParallelFuncs(fns ...func() error) error {
	var g errgroup.Group
	for _, fn := range fns {
		g.Go(fn)
	}
	return g.Wait()
}

// SequenceFuncs invokes the branches one after another on the calling
// goroutine, stopping at the first error.
func SequenceFuncs(fns ...func() error) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
