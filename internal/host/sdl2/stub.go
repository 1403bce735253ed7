//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/host"
	"github.com/coremaze/stx2205/internal/lcd"
)

// Backend stubs out the SDL2 window when the binary is built without
// the sdl2 tag; Init always fails so the CLI reports a clear startup
// error instead of silently doing nothing.
type Backend struct{}

// New returns a stub SDL2 backend.
func New() *Backend {
	return &Backend{}
}

// Init always fails: SDL2 support was not compiled in.
func (b *Backend) Init(cfg host.Config) error {
	return fmt.Errorf("SDL2 backend not available - build with -tags sdl2 and install SDL2 development libraries")
}

func (b *Backend) PushFrame(frame lcd.Frame)   {}
func (b *Backend) Poll() gpio.ButtonState      { return gpio.ButtonState{} }
func (b *Backend) ShouldQuit() bool            { return true }
func (b *Backend) PushSamples(samples []float32) {}
func (b *Backend) Cleanup() error              { return nil }
