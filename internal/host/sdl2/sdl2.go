//go:build sdl2

// Package sdl2 implements host.Backend on top of SDL2 bindings: a
// scaled window showing the 98x67 LCD grid, keyboard-to-button input,
// and a queued audio device for PSG samples.
//
// Grounded on the SDL2 backend in a Game Boy emulator's backend
// package (window/renderer/texture setup, streaming-texture pixel
// upload, QueueAudio-based playback), adapted from its 160x144
// four-shade framebuffer and action-mapped key table to this device's
// 98x67 RGB frame and 14-button gpio.ButtonState.
//
// Building this requires the SDL2 development libraries; default
// builds use the stub in stub.go instead.
package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/host"
	"github.com/coremaze/stx2205/internal/lcd"
	"github.com/veandco/go-sdl2/sdl"
)

const bytesPerPixel = 4

// Backend is an SDL2-backed windowed host.Backend.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale int

	buttons gpio.ButtonState
	quit    bool

	audioDevice sdl.AudioDeviceID
	pixelBuf    []byte
}

// New returns an uninitialized SDL2 backend.
func New() *Backend {
	return &Backend{}
}

// Init opens the window, renderer, streaming texture, and audio device.
func (b *Backend) Init(cfg host.Config) error {
	b.scale = cfg.Scale
	if b.scale <= 0 {
		b.scale = 3
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = "stx2205"
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(lcd.Width*b.scale),
		int32(lcd.Height*b.scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	b.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	b.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		lcd.Width, lcd.Height,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %w", err)
	}
	b.texture = texture

	b.pixelBuf = make([]byte, lcd.Width*lcd.Height*bytesPerPixel)

	if err := b.initAudio(); err != nil {
		slog.Warn("audio setup failed, continuing without sound", "error", err)
	}

	return nil
}

func (b *Backend) initAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     44100,
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  512,
	}
	obtained := &sdl.AudioSpec{}
	device, err := sdl.OpenAudioDevice("", false, spec, obtained, 0)
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	b.audioDevice = device
	sdl.PauseAudioDevice(b.audioDevice, false)
	return nil
}

// PushFrame uploads the frame to the streaming texture and presents it
// scaled to the window.
func (b *Backend) PushFrame(frame lcd.Frame) {
	b.drainEvents()

	for i, p := range frame.Pixels {
		o := i * bytesPerPixel
		// ABGR byte order for little-endian RGBA8888.
		b.pixelBuf[o] = 255
		b.pixelBuf[o+1] = p[2]
		b.pixelBuf[o+2] = p[1]
		b.pixelBuf[o+3] = p[0]
	}

	b.texture.Update(nil, unsafe.Pointer(&b.pixelBuf[0]), lcd.Width*bytesPerPixel)
	b.renderer.Clear()
	b.renderer.Copy(b.texture, nil, nil)
	b.renderer.Present()
}

// Poll returns the button state accumulated by the most recent event
// drain.
func (b *Backend) Poll() gpio.ButtonState {
	b.drainEvents()
	return b.buttons
}

// ShouldQuit reports whether the window was closed or Escape pressed.
func (b *Backend) ShouldQuit() bool {
	return b.quit
}

// PushSamples queues a batch of samples to the audio device.
func (b *Backend) PushSamples(samples []float32) {
	if b.audioDevice == 0 || len(samples) == 0 {
		return
	}
	bytes := (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[: len(samples)*4 : len(samples)*4]
	if err := sdl.QueueAudio(b.audioDevice, bytes); err != nil {
		slog.Error("failed to queue audio", "error", err)
	}
}

// Cleanup tears down the audio device, texture, renderer, and window.
func (b *Backend) Cleanup() error {
	if b.audioDevice != 0 {
		sdl.CloseAudioDevice(b.audioDevice)
	}
	if b.texture != nil {
		b.texture.Destroy()
	}
	if b.renderer != nil {
		b.renderer.Destroy()
	}
	if b.window != nil {
		b.window.Destroy()
	}
	sdl.Quit()
	return nil
}

var keyToButton = map[sdl.Keycode]gpio.Button{
	sdl.K_UP:     gpio.Up,
	sdl.K_DOWN:   gpio.Down,
	sdl.K_LEFT:   gpio.Left,
	sdl.K_RIGHT:  gpio.Right,
	sdl.K_p:      gpio.Power,
	sdl.K_m:      gpio.Menu,
	sdl.K_SPACE:  gpio.Action,
	sdl.K_RETURN: gpio.Action,
	sdl.K_x:      gpio.Mute,
}

func (b *Backend) drainEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			b.quit = true
		case *sdl.KeyboardEvent:
			b.handleKey(e)
		}
	}
}

func (b *Backend) handleKey(e *sdl.KeyboardEvent) {
	if e.Keysym.Sym == sdl.K_ESCAPE && e.Type == sdl.KEYDOWN {
		b.quit = true
		return
	}
	button, ok := keyToButton[e.Keysym.Sym]
	if !ok {
		return
	}
	b.buttons[button] = e.Type == sdl.KEYDOWN
}
