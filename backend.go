package sill

// Backend is the host windowing system. It creates device windows,
// enumerates displays, and pumps host events once per tick.
//
// Pump must tolerate calls from multiple goroutines: the thread-based
// composition helpers run independent drivers concurrently against the
// same backend, and an event must never be consumed twice.
type Backend interface {
	// Open creates a device window for the given initial state.
	Open(cfg WindowConfig) (DeviceWindow, error)

	// Pump processes pending host events. It returns false when the host
	// requests a stop (window close, escape key, interrupt).
	Pump() bool

	// Screens describes the attached displays.
	Screens() []Screen

	// Close releases the backend. Device windows still open become
	// unusable.
	Close() error
}

// DeviceWindow is one host window. Window calls these during Apply; each
// call is an expensive synchronization with the host, which is why Window
// defers them behind dirty flags.
type DeviceWindow interface {
	SetPosition(x, y int)
	SetSize(w, h int)
	SetOpacity(opacity float64)

	// Render redraws the window contents from the given state.
	Render(state RenderState) error

	Close()
}

// RenderState is the snapshot a DeviceWindow renders from.
type RenderState struct {
	Bounds  Rect
	Color   Color
	Opacity float64
	Content Content
}

// WindowConfig is the initial state for a new window. Zero values mean:
// white, fully opaque, borderless, no content.
type WindowConfig struct {
	X, Y          float64
	Width, Height float64
	Color         Color
	Opacity       float64
	Title         string
	Content       Content

	// Bordered opts back into host decorations; windows are borderless
	// by default.
	Bordered bool
}

func (cfg WindowConfig) withDefaults() WindowConfig {
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	if cfg.Opacity == 0 {
		cfg.Opacity = 1
	}
	return cfg
}
