// Package terminal implements host.Backend on top of tcell, rendering
// the 98x67 LCD grid as block characters and mapping keys to the
// device's 14 buttons. It carries no audio support.
//
// Grounded on the tcell usage in a Game Boy emulator's terminal
// renderer (screen init/Fini, PollEvent loop, SetContent per cell),
// adapted from its split register/disassembly panes to a single
// scaled pixel grid matching this device's button set.
package terminal

import (
	"fmt"

	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/host"
	"github.com/coremaze/stx2205/internal/lcd"
	"github.com/gdamore/tcell/v2"
)

// shadeChars renders pixel brightness as one of four block densities,
// darkest first.
var shadeChars = []rune{' ', '░', '▒', '▓'}

// Backend is a tcell-backed terminal host.Backend.
type Backend struct {
	screen  tcell.Screen
	running bool

	buttons gpio.ButtonState
	quit    bool
}

// New returns an uninitialized terminal backend.
func New() *Backend {
	return &Backend{}
}

// Init opens the terminal screen.
func (b *Backend) Init(cfg host.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	b.screen = screen
	b.running = true
	return nil
}

// PushFrame draws the frame as a grid of shaded block characters, one
// character per pixel.
func (b *Backend) PushFrame(frame lcd.Frame) {
	if !b.running {
		return
	}

	b.drainEvents()
	if !b.running {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y := 0; y < lcd.Height; y++ {
		for x := 0; x < lcd.Width; x++ {
			p := frame.Pixels[y*lcd.Width+x]
			brightness := (int(p[0]) + int(p[1]) + int(p[2])) / 3
			shade := brightness * (len(shadeChars) - 1) / 255
			b.screen.SetContent(x, y, shadeChars[shade], nil, style)
		}
	}
	b.screen.Show()
}

// Poll returns the button state accumulated by the most recent event
// drain.
func (b *Backend) Poll() gpio.ButtonState {
	b.drainEvents()
	return b.buttons
}

// ShouldQuit reports whether Escape, Ctrl-C, or a terminal close event
// has been seen.
func (b *Backend) ShouldQuit() bool {
	return b.quit
}

// PushSamples is a no-op; the terminal backend has no audio output.
func (b *Backend) PushSamples(samples []float32) {}

// Cleanup restores the terminal.
func (b *Backend) Cleanup() error {
	if b.screen != nil {
		b.screen.Fini()
	}
	return nil
}

// drainEvents resets the button state and replays pending key events.
// A terminal reports discrete key presses, not held/released
// transitions, so each poll treats "pressed since last poll" as the
// current state and a key held via OS auto-repeat keeps refreshing it.
func (b *Backend) drainEvents() {
	if b.screen == nil {
		return
	}
	b.buttons = gpio.ButtonState{}
	for b.screen.HasPendingEvent() {
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventKey:
			b.handleKey(ev)
		case *tcell.EventResize:
			b.screen.Sync()
		}
	}
}

func (b *Backend) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		b.quit = true
		return
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'w':
			b.buttons[gpio.Up] = true
		case 's':
			b.buttons[gpio.Down] = true
		case 'a':
			b.buttons[gpio.Left] = true
		case 'd':
			b.buttons[gpio.Right] = true
		case 'p':
			b.buttons[gpio.Power] = true
		case 'm':
			b.buttons[gpio.Menu] = true
		case ' ':
			b.buttons[gpio.Action] = true
		case 'x':
			b.buttons[gpio.Mute] = true
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		b.buttons[gpio.Up] = true
	case tcell.KeyDown:
		b.buttons[gpio.Down] = true
	case tcell.KeyLeft:
		b.buttons[gpio.Left] = true
	case tcell.KeyRight:
		b.buttons[gpio.Right] = true
	case tcell.KeyEnter:
		b.buttons[gpio.Action] = true
	}
}
