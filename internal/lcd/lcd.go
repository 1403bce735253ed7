// Package lcd implements the ST7626 segment-matrix LCD controller: the
// command/data register pair, the per-command data state machine that
// drives cursor placement and DDRAM writes, and pixel emission with
// contrast scaling, including EC-voltage contrast scaling and
// display_on gating.
package lcd

import "github.com/coremaze/stx2205/internal/mmio"

const (
	// Width and Height are the fixed output pixel grid every frame emits.
	Width  = 98
	Height = 67

	// ddramPages is the full DDRAM page count the controller addresses
	// (more than the 67 visible rows), matching the 68x98x2-byte DDRAM
	// size the chip actually carries.
	ddramPages = 68
	ddramSize  = ddramPages * Width * 2 // 2 bytes per pixel
)

// command is the controller's currently latched command, tracked so
// incoming data bytes know which state machine to drive.
type command uint8

const (
	cmdNone command = iota
	cmdPageAddressSet
	cmdColumnAddressSet
	cmdWritingToMemory
	cmdEcControl
)

// Frame is one emitted 98x67 RGB pixel grid, row-major, one RGB triple
// per pixel.
type Frame struct {
	Pixels [Width * Height][3]uint8
}

// Controller is the LCD's full command/cursor/DDRAM state.
type Controller struct {
	ext bool

	active         command
	byteSinceCmd   int
	startPage      uint8
	endPage        uint8
	startColumn    uint8
	endColumn      uint8
	currentColumn  uint8
	currentPage    uint8

	voltageLow  uint8 // low 6 bits
	voltageHigh uint8 // high 3 bits

	displayOn bool

	ddram [ddramSize]uint8

	// lastFrame holds the most recently emitted frame; frameReady is set
	// when a new frame is available and cleared by TakeFrame.
	lastFrame  Frame
	frameReady bool

	// irqPending is set alongside frameReady on every emitted frame, but
	// consumed independently by the interrupt dispatcher so a slow host
	// draining TakeFrame doesn't suppress the LCD interrupt.
	irqPending bool
}

// New returns a controller with the display off and no active command,
// its power-on state.
func New() *Controller {
	return &Controller{}
}

func (c *Controller) voltage() uint16 {
	return uint16(c.voltageHigh)<<6 | uint16(c.voltageLow)
}

func (c *Controller) ddramOffset() int {
	return (int(c.currentPage)*Width + int(c.currentColumn)) * 2
}

// resetPageKeepColumn resets the page axis to startPage, leaving the
// current column untouched, as PageAddressSet's second byte does.
func (c *Controller) resetPageKeepColumn() {
	c.currentPage = c.startPage
}

// resetColumnKeepPage resets the column axis to startColumn, leaving the
// current page untouched, as ColumnAddressSet's second byte does.
func (c *Controller) resetColumnKeepPage() {
	c.currentColumn = c.startColumn
}

// writeCommand latches a new command byte, or toggles EXT mode for the
// two codes that work identically in either table.
func (c *Controller) writeCommand(value uint8) {
	switch value {
	case mmio.LCDExtOn:
		c.ext = true
		return
	case mmio.LCDExtOff:
		c.ext = false
		return
	}

	c.byteSinceCmd = 0

	if c.ext {
		// The extended table's commands (PWM/EEPROM/analog tuning) have no
		// pixel-visible effect modeled here; only the mode switch matters.
		c.active = cmdNone
		return
	}

	switch value {
	case mmio.LCDPageAddressSet:
		c.active = cmdPageAddressSet
	case mmio.LCDColumnAddressSet:
		c.active = cmdColumnAddressSet
	case mmio.LCDWritingToMemory:
		c.active = cmdWritingToMemory
	case mmio.LCDEcControl:
		c.active = cmdEcControl
	case mmio.LCDDisplayOn:
		c.displayOn = true
		c.active = cmdNone
	case mmio.LCDDisplayOff:
		c.displayOn = false
		c.active = cmdNone
	default:
		c.active = cmdNone
	}
}

func (c *Controller) writeData(value uint8) {
	switch c.active {
	case cmdPageAddressSet:
		switch c.byteSinceCmd {
		case 0:
			c.startPage = value
		case 1:
			c.endPage = value
			c.resetPageKeepColumn()
		}
	case cmdColumnAddressSet:
		switch c.byteSinceCmd {
		case 0:
			c.startColumn = value
		case 1:
			c.endColumn = value
			c.resetColumnKeepPage()
		}
	case cmdWritingToMemory:
		c.ddram[(c.ddramOffset()+c.byteSinceCmd%2)%len(c.ddram)] = value
		c.advanceCursor()
	case cmdEcControl:
		switch c.byteSinceCmd {
		case 0:
			c.voltageLow = value & 0x3F
		case 1:
			c.voltageHigh = value & 0x07
			c.emitFrame()
		}
	}
	c.byteSinceCmd++
}

// advanceCursor moves one byte through the 2-byte-per-pixel DDRAM
// layout, wrapping column->page->start on overflow, and emits a frame
// when the page wraps back to start.
func (c *Controller) advanceCursor() {
	if c.byteSinceCmd%2 == 1 {
		c.currentColumn++
		if c.currentColumn > c.endColumn {
			c.currentColumn = c.startColumn
			c.currentPage++
			if c.currentPage > c.endPage {
				c.currentPage = c.startPage
				c.emitFrame()
			}
		}
	}
}

func contrastFactor(v uint16) float32 {
	switch {
	case v <= 1:
		return 0
	case v >= 36:
		return 1
	default:
		return float32(v-1) / 36.0
	}
}

func scale(channel uint8, factor float32) uint8 {
	return uint8(float32(channel) * factor)
}

// emitFrame renders the current DDRAM contents within the active
// page/column window into lastFrame and marks it ready for the host to
// consume.
func (c *Controller) emitFrame() {
	var f Frame
	factor := contrastFactor(c.voltage())

	for page := c.startPage; page <= c.endPage; page++ {
		for col := c.startColumn; col <= c.endColumn; col++ {
			offset := (int(page)*Width + int(col)) * 2
			if offset+1 >= len(c.ddram) {
				continue
			}
			b0 := c.ddram[offset]
			b1 := c.ddram[offset+1]

			red := 255 - (b0&0x0F)*17
			green := 255 - ((b1 >> 4) & 0x0F) * 17
			blue := 255 - (b1&0x0F)*17

			pixelIndex := int(page)*Width + int(col)
			if pixelIndex >= len(f.Pixels) {
				continue
			}
			if !c.displayOn {
				f.Pixels[pixelIndex] = [3]uint8{0, 0, 0}
				continue
			}
			f.Pixels[pixelIndex] = [3]uint8{
				scale(red, factor),
				scale(green, factor),
				scale(blue, factor),
			}
		}
	}

	c.lastFrame = f
	c.frameReady = true
	c.irqPending = true
}

// TakeFrame returns the most recently emitted frame and whether a new
// one has arrived since the last call.
func (c *Controller) TakeFrame() (Frame, bool) {
	ready := c.frameReady
	c.frameReady = false
	return c.lastFrame, ready
}

// TakeInterrupt reports whether a frame has been emitted since the last
// call, clearing the flag. Used by the interrupt dispatcher to raise the
// LCD buffer interrupt once per emitted frame.
func (c *Controller) TakeInterrupt() bool {
	pending := c.irqPending
	c.irqPending = false
	return pending
}

// Read dispatches a command/data register read, selected by addr mod 2
// (0 = command, 1 = data). The command register is write-only in
// practice; reads return 0.
func (c *Controller) Read(addr uint16) uint8 {
	if addr%2 == 1 {
		return c.ddram[(c.ddramOffset()+c.byteSinceCmd%2)%len(c.ddram)]
	}
	return 0
}

// Write dispatches a command/data register write, selected by addr mod
// 2.
func (c *Controller) Write(addr uint16, value uint8) {
	if addr%2 == 0 {
		c.writeCommand(value)
		return
	}
	c.writeData(value)
}
