package sill

import (
	"errors"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestUpdateFlushesEveryLiveWindow(t *testing.T) {
	backend := newFakeBackend()
	desk := New(backend)
	a, _ := desk.Window(WindowConfig{Width: 10, Height: 10})
	b, _ := desk.Window(WindowConfig{Width: 10, Height: 10})

	// Instant writes made outside any task.
	a.SetPosition(1, 1)
	b.SetPosition(2, 2)

	if !desk.Update() {
		t.Fatal("Update reported stop on a healthy desktop")
	}
	if positions, _, _, _ := backend.devices[0].counts(); positions != 1 {
		t.Error("first window not flushed")
	}
	if positions, _, _, _ := backend.devices[1].counts(); positions != 1 {
		t.Error("second window not flushed")
	}
	if desk.FrameCount() != 1 {
		t.Errorf("frame count = %d, want 1", desk.FrameCount())
	}
}

func TestUpdateStopsAfterStopRequest(t *testing.T) {
	desk := New(newFakeBackend())
	desk.Stop()
	if desk.Update() {
		t.Error("Update must report stop after Stop()")
	}
}

func TestUpdateStopsWhenHostQuits(t *testing.T) {
	backend := newFakeBackend()
	backend.pump = func() bool { return false }
	desk := New(backend)
	if desk.Update() {
		t.Error("Update must report stop once the host pump quits")
	}
	// The stop latches.
	backend.pump = nil
	if desk.Update() {
		t.Error("stop must be sticky")
	}
}

func TestRunDrivesTaskToCompletion(t *testing.T) {
	desk := New(newFakeBackend())
	desk.FPS = 1000

	task := &stepTask{need: 3}
	if err := desk.Run(task); err != nil {
		t.Fatal(err)
	}
	if task.advances != 3 {
		t.Errorf("task advanced %d times, want 3", task.advances)
	}
}

func TestRunReturnsTaskError(t *testing.T) {
	desk := New(newFakeBackend())
	desk.FPS = 1000

	boom := errors.New("boom")
	if err := desk.Run(failTask{boom}); !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want boom", err)
	}
}

func TestRunFlushesPendingWritesBeforeAdvancing(t *testing.T) {
	backend := newFakeBackend()
	desk := New(backend)
	desk.FPS = 1000
	win, _ := desk.Window(WindowConfig{Width: 10, Height: 10})
	win.SetPosition(7, 7)

	var flushed bool
	err := desk.Run(TaskFunc(func(dt float64) (bool, error) {
		positions, _, _, _ := backend.devices[0].counts()
		flushed = positions == 1
		return true, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !flushed {
		t.Error("pending write should reach the host before the task's first advance")
	}
}

func TestRunStopsMidTask(t *testing.T) {
	desk := New(newFakeBackend())
	desk.FPS = 1000

	task := TaskFunc(func(dt float64) (bool, error) {
		desk.Stop()
		return false, nil
	})
	if err := desk.Run(task); err != nil {
		t.Fatal(err)
	}
	if desk.Update() {
		t.Error("desktop should remain stopped")
	}
}

func TestInterruptStopsRun(t *testing.T) {
	desk := New(newFakeBackend())
	desk.FPS = 500

	errCh := make(chan error, 1)
	go func() {
		// The task never finishes; only the interrupt can end the run.
		errCh <- desk.Run(TaskFunc(func(dt float64) (bool, error) {
			return false, nil
		}))
	}()

	// Wait for the loop (and its signal handler) to be up before firing.
	deadline := time.Now().Add(2 * time.Second)
	for desk.FrameCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("driver loop never ticked")
		}
		time.Sleep(time.Millisecond)
	}
	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}
	if err := proc.Signal(syscall.SIGINT); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned %v, want graceful nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on interrupt")
	}
	if desk.Update() {
		t.Error("interrupt must latch the stop flag")
	}
}

func TestDesktopWaitBlocksForDuration(t *testing.T) {
	desk := New(newFakeBackend())
	desk.FPS = 500

	start := time.Now()
	if err := desk.Wait(0.05); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Wait(0.05) returned after %v", elapsed)
	}
}

func TestClearClosesAllWindows(t *testing.T) {
	backend := newFakeBackend()
	desk := New(backend)
	desk.Window(WindowConfig{Width: 10, Height: 10})
	desk.Window(WindowConfig{Width: 10, Height: 10})

	desk.Clear()
	if got := len(desk.Windows()); got != 0 {
		t.Fatalf("%d windows left after Clear", got)
	}
	for i, dev := range backend.devices {
		dev.mu.Lock()
		closed := dev.closed
		dev.mu.Unlock()
		if !closed {
			t.Errorf("device %d not closed", i)
		}
	}
}

func TestCloseReleasesBackend(t *testing.T) {
	backend := newFakeBackend()
	desk := New(backend)
	desk.Window(WindowConfig{Width: 10, Height: 10})

	if err := desk.Close(); err != nil {
		t.Fatal(err)
	}
	backend.mu.Lock()
	closed := backend.closed
	backend.mu.Unlock()
	if !closed {
		t.Error("backend not released")
	}
	if desk.Update() {
		t.Error("desktop should be stopped after Close")
	}
}

func TestInstantWriteThenBlockingMove(t *testing.T) {
	backend := newFakeBackend()
	desk := New(backend)
	desk.FPS = 1000
	win, _ := desk.Window(WindowConfig{Width: 10, Height: 10})

	// duration <= 0 writes synchronously with no loop involved.
	if err := Move(win, 30, 40, 0, nil); err != nil {
		t.Fatal(err)
	}
	if pos := win.Position(); pos.X != 30 || pos.Y != 40 {
		t.Fatalf("instant move: %v", pos)
	}
	if positions, _, _, _ := backend.devices[0].counts(); positions != 0 {
		t.Fatal("instant move flushed before any tick")
	}

	if err := Move(win, 0, 0, 0.02, "ease_out_quad"); err != nil {
		t.Fatal(err)
	}
	if pos := win.Position(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("blocking move ended at %v, want (0, 0)", pos)
	}
}
