package sill

import "sync"

// fakeBackend records every host call so tests can assert on flush
// counts and ordering.
type fakeBackend struct {
	mu      sync.Mutex
	devices []*fakeDevice
	pump    func() bool
	closed  bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (b *fakeBackend) Open(cfg WindowConfig) (DeviceWindow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	dev := &fakeDevice{backend: b}
	b.devices = append(b.devices, dev)
	return dev, nil
}

func (b *fakeBackend) Pump() bool {
	b.mu.Lock()
	pump := b.pump
	b.mu.Unlock()
	if pump != nil {
		return pump()
	}
	return true
}

func (b *fakeBackend) Screens() []Screen {
	return []Screen{{Width: 1920, Height: 1080}}
}

func (b *fakeBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

type fakeDevice struct {
	backend *fakeBackend

	mu        sync.Mutex
	positions int
	sizes     int
	opacities int
	renders   int
	calls     []string

	x, y, w, h int
	opacity    float64
	state      RenderState
	closed     bool
}

func (d *fakeDevice) SetPosition(x, y int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.positions++
	d.calls = append(d.calls, "position")
	d.x, d.y = x, y
}

func (d *fakeDevice) SetSize(w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sizes++
	d.calls = append(d.calls, "size")
	d.w, d.h = w, h
}

func (d *fakeDevice) SetOpacity(opacity float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opacities++
	d.calls = append(d.calls, "opacity")
	d.opacity = opacity
}

func (d *fakeDevice) Render(state RenderState) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renders++
	d.calls = append(d.calls, "render")
	d.state = state
	return nil
}

func (d *fakeDevice) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

func (d *fakeDevice) counts() (positions, sizes, opacities, renders int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.positions, d.sizes, d.opacities, d.renders
}

// testWindow opens a window on a fresh desktop with a fake backend and
// returns all three.
func testWindow(cfg WindowConfig) (*Desktop, *Window, *fakeDevice) {
	backend := newFakeBackend()
	desk := New(backend)
	win, err := desk.Window(cfg)
	if err != nil {
		panic(err)
	}
	return desk, win, backend.devices[0]
}
