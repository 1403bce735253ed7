package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// flatBus is a 64KiB byte array standing in for the MCU address space, for
// exercising the CPU in isolation.
type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) uint8        { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, value uint8) { b.mem[addr] = value }

func newTestCPU() (*CPU, *flatBus) {
	return New(), &flatBus{}
}

func TestResetLoadsVector(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x7FFC] = 0x34
	bus.mem[0x7FFD] = 0x12

	c.Reset(bus)

	require.Equal(t, uint16(0x1234), c.PC)
	require.False(t, c.Interrupted)
}

func TestStackRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	c.SP = 0xFF

	c.push8(bus, 0x42)
	c.push16(bus, 0xBEEF)
	got16 := c.pop16(bus)
	got8 := c.pop8(bus)

	require.Equal(t, uint16(0xBEEF), got16)
	require.Equal(t, uint8(0x42), got8)
	require.Equal(t, uint8(0xFF), c.SP)
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xA9 // LDA #
	bus.mem[0x0201] = 0x00
	c.PC = 0x0200

	cycles := c.Step(bus)

	require.Equal(t, 2, cycles)
	require.Equal(t, uint8(0), c.A)
	require.True(t, c.Z)
	require.False(t, c.N)
}

func TestAbsoluteXPageCrossAddsCycle(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xBD // LDA abs,X
	bus.mem[0x0201] = 0xFF
	bus.mem[0x0202] = 0x02
	bus.mem[0x0300] = 0x99
	c.PC = 0x0200
	c.X = 0x01

	cycles := c.Step(bus)

	require.Equal(t, 5, cycles) // base 4 + 1 for crossing 0x02FF -> 0x0300
	require.Equal(t, uint8(0x99), c.A)
}

func TestBranchTakenAndPageCross(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x02F0] = 0xF0 // BEQ
	bus.mem[0x02F1] = 0x20 // +32, crosses into next page
	c.PC = 0x02F0
	c.Z = true

	cycles := c.Step(bus)

	require.Equal(t, uint16(0x0312), c.PC)
	require.Equal(t, 4, cycles) // base 2 + taken 1 + page-cross 1
}

func TestRMBClearsBitSMBSetsBit(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x10] = 0xFF
	bus.mem[0x0200] = 0x07 // RMB0 zp
	bus.mem[0x0201] = 0x10
	c.PC = 0x0200

	c.Step(bus)
	require.Equal(t, uint8(0xFE), bus.mem[0x10])

	bus.mem[0x0202] = 0x87 // SMB0 zp
	bus.mem[0x0203] = 0x10
	bus.mem[0x10] = 0x00
	c.PC = 0x0202

	c.Step(bus)
	require.Equal(t, uint8(0x01), bus.mem[0x10])
}

func TestBBRBranchesWhenBitClear(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x10] = 0x00
	bus.mem[0x0200] = 0x0F // BBR0 zp,rel
	bus.mem[0x0201] = 0x10
	bus.mem[0x0202] = 0x05
	c.PC = 0x0200

	c.Step(bus)

	require.Equal(t, uint16(0x0208), c.PC)
}

func TestDecimalADC(t *testing.T) {
	c, _ := newTestCPU()
	c.D = true
	c.A = 0x58
	c.C = true

	extra := c.adc(0x46)

	require.Equal(t, uint8(0x05), c.A) // 58 + 46 + 1 = 105 BCD
	require.True(t, c.C)
	require.Equal(t, 1, extra, "decimal mode costs an extra cycle")
}

func TestDecimalSBC(t *testing.T) {
	c, _ := newTestCPU()
	c.D = true
	c.A = 0x46
	c.C = true // no borrow in

	extra := c.sbc(0x12)

	require.Equal(t, uint8(0x34), c.A)
	require.True(t, c.C)
	require.Equal(t, 1, extra, "decimal mode costs an extra cycle")
}

func TestBinaryADCAndSBCCostNoExtraCycle(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x01

	require.Equal(t, 0, c.adc(0x01))
	require.Equal(t, 0, c.sbc(0x01))
}

func TestDecimalModeADCStepCostsExtraCycle(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0300] = 0x69 // ADC #
	bus.mem[0x0301] = 0x01
	c.PC = 0x0300
	c.D = true

	cycles := c.Step(bus)

	require.Equal(t, 3, cycles) // base 2 + 1 for decimal mode
}

func TestInterruptDispatchAndRTI(t *testing.T) {
	c, bus := newTestCPU()
	c.SP = 0xFF
	c.PC = 0x1000
	bus.mem[0x7FEC] = 0x00
	bus.mem[0x7FED] = 0x20

	c.Dispatch(bus, 0x7FEC)

	require.Equal(t, uint16(0x2000), c.PC)
	require.True(t, c.Interrupted)
	require.True(t, c.I)

	bus.mem[0x2000] = 0x40 // RTI
	c.Step(bus)

	require.Equal(t, uint16(0x1000), c.PC, "state after RTI: %s", c)
	require.False(t, c.Interrupted)
}

func TestStringReportsRegistersAndCycles(t *testing.T) {
	c, _ := newTestCPU()
	c.PC = 0x1234
	c.A = 0x56
	c.Cycles = 7

	s := c.String()

	require.Contains(t, s, "PC=1234")
	require.Contains(t, s, "A=56")
	require.Contains(t, s, "cycles=7")
}
