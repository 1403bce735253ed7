// Package host defines the platform-facing surface the pacing driver
// pumps each tick: a window/terminal that renders frames and reports
// input, and an audio sink that plays mixed PSG samples. Concrete
// backends (internal/host/sdl2, internal/host/terminal) implement it;
// the core never depends on either directly.
//
// Grounded on the Backend interface a Game Boy emulator's rendering
// layer exposes, narrowed from InputEvent/action-mapped keys to this
// device's fixed 14-button ButtonState and adapted to the pacer's
// Screen/Input/AudioSink roles instead of a single per-frame Update call.
package host

import (
	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/lcd"
)

// Config configures a Backend at Init time.
type Config struct {
	Title string
	Scale int
}

// Backend is a complete host platform: window or terminal rendering,
// keyboard-to-button input, and (optionally) audio playback. Its
// PushFrame/Poll/PushSamples methods satisfy pacer.Screen, pacer.Input,
// and pacer.AudioSink respectively, so a Backend plugs directly into
// pacer.New without an adapter.
type Backend interface {
	// Init opens the window/terminal/audio device. Must be called before
	// any other method.
	Init(cfg Config) error

	// PushFrame renders a newly emitted LCD frame. Implementations may
	// drop frames under back-pressure; correctness never depends on a
	// particular frame landing.
	PushFrame(frame lcd.Frame)

	// Poll returns the current button state.
	Poll() gpio.ButtonState

	// ShouldQuit reports whether the user has asked to quit (window
	// close, Escape, Ctrl-C). Checked by the host loop, not by the pacer.
	ShouldQuit() bool

	// PushSamples plays a batch of mixed PSG samples. Implementations
	// that don't support audio may no-op.
	PushSamples(samples []float32)

	// Cleanup releases window/terminal/audio resources.
	Cleanup() error
}
