// Package sill animates desktop windows: position, size, opacity, and
// color changes play out smoothly over time, either blocking the caller
// until done or composed into parallel/sequential animation graphs.
//
// # Quick start
//
//	backend, err := term.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	desk := sill.New(backend)
//	defer desk.Close()
//
//	win, err := desk.Window(sill.WindowConfig{
//		X: 10, Y: 5, Width: 20, Height: 8,
//		Color: sill.MustColor("tomato"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	sill.Move(win, 60, 5, 2.0, "ease_out_cubic")
//
// # Tasks and composition
//
// Every animation is a [Task]: advance one tick, report done. The
// blocking helpers ([Move], [Resize], [Fade], [ColorTo]) build a task and
// run it for you; the Task constructors ([MoveTask], [ResizeTask],
// [FadeTask], [ColorTask]) hand it back for composition with [Parallel],
// [Sequence], and [Wait], run through [Desktop.Run]:
//
//	slide, _ := sill.MoveTask(a, 100, 0, 1.0, "ease_out")
//	grow, _ := sill.ResizeTask(a, 40, 16, 1.0, "ease_out")
//	tint, _ := sill.ColorTask(b, sill.MustColor("#4488ff"), 0.5, nil)
//	desk.Run(sill.Sequence(sill.Parallel(slide, grow), sill.Wait(0.5), tint))
//
// [ParallelFuncs] and [SequenceFuncs] are the coarse alternative: each
// branch is an ordinary blocking script on its own goroutine, joined at
// the end.
//
// # Deferred application
//
// Property setters on [Window] are cheap: they update logical state and
// raise a dirty flag. Once per tick the driver flushes every live window
// through [Window.Apply], which performs only the host calls the flags
// call for and at most one re-render. Direct setter writes (or any
// animation with duration <= 0) are applied synchronously to logical
// state and picked up by the next tick's flush.
//
// # Stopping
//
// The driver stops when the host reports quit (window close, escape key)
// or on Ctrl-C, which is converted into a graceful stop and the prior
// signal disposition restored. [Desktop.Stop] does the same from code.
// There is no per-animation cancellation: stop the loop, or close the
// window — animations targeting a closed window complete immediately
// without effect.
package sill
