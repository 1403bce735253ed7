package lcd

import (
	"testing"

	"github.com/coremaze/stx2205/internal/mmio"
	"github.com/stretchr/testify/require"
)

func TestDisplayOnOffToggle(t *testing.T) {
	c := New()
	require.False(t, c.displayOn)

	c.Write(0, mmio.LCDDisplayOn)
	require.True(t, c.displayOn)

	c.Write(0, mmio.LCDDisplayOff)
	require.False(t, c.displayOn)
}

func TestPageAndColumnAddressSetResetCursor(t *testing.T) {
	c := New()
	c.Write(0, mmio.LCDPageAddressSet)
	c.Write(1, 2) // start_page
	c.Write(1, 4) // end_page

	c.Write(0, mmio.LCDColumnAddressSet)
	c.Write(1, 10) // start_column
	c.Write(1, 20) // end_column

	require.Equal(t, uint8(2), c.startPage)
	require.Equal(t, uint8(4), c.endPage)
	require.Equal(t, uint8(10), c.startColumn)
	require.Equal(t, uint8(20), c.endColumn)
	require.Equal(t, uint8(10), c.currentColumn)
	require.Equal(t, uint8(2), c.currentPage)
}

func TestWritingToMemoryWrapsAndEmitsFrame(t *testing.T) {
	c := New()
	c.displayOn = true
	c.Write(0, mmio.LCDPageAddressSet)
	c.Write(1, 0)
	c.Write(1, 0) // single page
	c.Write(0, mmio.LCDColumnAddressSet)
	c.Write(1, 0)
	c.Write(1, 0) // single column

	c.Write(0, mmio.LCDWritingToMemory)
	c.Write(1, 0xF0) // byte0
	c.Write(1, 0x0F) // byte1, completes the pixel and wraps page -> emits

	_, ready := c.TakeFrame()
	require.True(t, ready)
}

func TestContrastFactorBounds(t *testing.T) {
	require.Equal(t, float32(0), contrastFactor(0))
	require.Equal(t, float32(0), contrastFactor(1))
	require.Equal(t, float32(1), contrastFactor(36))
	require.Equal(t, float32(1), contrastFactor(100))
	require.InDelta(t, float64(17)/36.0, float64(contrastFactor(18)), 1e-6)
}

func TestDisplayOffEmitsBlackPixels(t *testing.T) {
	c := New()
	c.displayOn = false
	c.Write(0, mmio.LCDPageAddressSet)
	c.Write(1, 0)
	c.Write(1, 0)
	c.Write(0, mmio.LCDColumnAddressSet)
	c.Write(1, 0)
	c.Write(1, 0)

	c.Write(0, mmio.LCDWritingToMemory)
	c.Write(1, 0xFF)
	c.Write(1, 0xFF)

	frame, _ := c.TakeFrame()
	require.Equal(t, [3]uint8{0, 0, 0}, frame.Pixels[0])
}

func TestPageAddressSetPreservesCurrentColumn(t *testing.T) {
	c := New()
	c.currentColumn = 5
	c.currentPage = 3

	c.Write(0, mmio.LCDPageAddressSet)
	c.Write(1, 1) // start_page
	c.Write(1, 4) // end_page

	require.Equal(t, uint8(5), c.currentColumn, "column axis must be untouched by PageAddressSet")
	require.Equal(t, uint8(1), c.currentPage)
}

func TestColumnAddressSetPreservesCurrentPage(t *testing.T) {
	c := New()
	c.currentColumn = 5
	c.currentPage = 3

	c.Write(0, mmio.LCDColumnAddressSet)
	c.Write(1, 10) // start_column
	c.Write(1, 40) // end_column

	require.Equal(t, uint8(3), c.currentPage, "page axis must be untouched by ColumnAddressSet")
	require.Equal(t, uint8(10), c.currentColumn)
}

func TestWritingToMemoryFillsBothDDRAMBytes(t *testing.T) {
	c := New()
	c.displayOn = true
	c.Write(0, mmio.LCDPageAddressSet)
	c.Write(1, 0)
	c.Write(1, 0)
	c.Write(0, mmio.LCDColumnAddressSet)
	c.Write(1, 0)
	c.Write(1, 1) // two columns, so wrap doesn't fire on the first pixel

	c.Write(0, mmio.LCDWritingToMemory)
	c.Write(1, 0x0F) // low byte of pixel 0
	c.Write(1, 0xF0) // high byte of pixel 0

	require.Equal(t, uint8(0x0F), c.ddram[0])
	require.Equal(t, uint8(0xF0), c.ddram[1], "high DDRAM byte must be written, not left at zero")
}

func TestReadUsesTheSameByteParityAsWrite(t *testing.T) {
	c := New()
	c.currentColumn = 3
	c.currentPage = 0
	c.ddram[6] = 0xAB // low byte of pixel (page 0, column 3)
	c.ddram[7] = 0xCD // high byte

	c.byteSinceCmd = 0
	require.Equal(t, uint8(0xAB), c.Read(1))

	c.byteSinceCmd = 1
	require.Equal(t, uint8(0xCD), c.Read(1))
}
