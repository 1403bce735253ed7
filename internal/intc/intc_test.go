package intc

import (
	"testing"

	"github.com/coremaze/stx2205/internal/mmio"
	"github.com/stretchr/testify/require"
)

func TestAssertIsGatedByIENA(t *testing.T) {
	c := New()

	c.Assert(3)
	_, ok := c.HighestPriority()
	require.False(t, ok, "source 3 is masked out, IENA starts at zero")

	c.Write(mmio.IENAL, 1<<3)
	c.Assert(3)
	source, ok := c.HighestPriority()
	require.True(t, ok)
	require.Equal(t, 3, source)
}

func TestHighestPriorityIsLowestNumberedSource(t *testing.T) {
	c := New()
	c.Write(mmio.IENAL, 0xFF)
	c.Write(mmio.IENAH, 0xFF)

	c.Assert(7)
	c.Assert(2)
	c.Assert(9)

	source, ok := c.HighestPriority()
	require.True(t, ok)
	require.Equal(t, 2, source)
}

func TestClearRemovesOnlyShadowBit(t *testing.T) {
	c := New()
	c.Write(mmio.IENAL, 1<<5)

	c.Assert(5)
	c.Clear(5)

	_, ok := c.HighestPriority()
	require.False(t, ok, "shadow bit cleared, dispatcher has nothing left pending")

	ireqLow, _ := c.Read(mmio.IREQL)
	require.Equal(t, uint8(1<<5), ireqLow, "firmware-visible IREQ is untouched by Clear")
}

func TestWriteIREQAcksOnlyZeroBits(t *testing.T) {
	c := New()
	c.Write(mmio.IENAL, 0x03)

	c.Assert(0)
	c.Assert(1)

	// Firmware acks bit 0 by writing a 0 there and 1s everywhere else.
	c.Write(mmio.IREQL, 0xFE)

	low, _ := c.Read(mmio.IREQL)
	require.Equal(t, uint8(1<<1), low)
}

func TestVectorForMatchesMmioTable(t *testing.T) {
	c := New()
	require.Equal(t, mmio.VectorFor(4), c.Vector(4))
}

func TestAssertIgnoresOutOfRangeSource(t *testing.T) {
	c := New()
	c.Write(mmio.IENAL, 0xFF)
	c.Write(mmio.IENAH, 0xFF)

	require.NotPanics(t, func() {
		c.Assert(-1)
		c.Assert(16)
	})
	_, ok := c.HighestPriority()
	require.False(t, ok)
}
