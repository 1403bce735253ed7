package machine

import (
	"testing"

	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/mmio"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	otp := make([]uint8, OTPSize)
	flashData := make([]uint8, mmio.FlashSize)
	for i := range flashData {
		flashData[i] = 0xFF
	}
	return New(otp, flashData, nil)
}

func TestResetLoadsPCFromOTPResetVector(t *testing.T) {
	otp := make([]uint8, OTPSize)
	otp[0x3FFC] = 0x34
	otp[0x3FFD] = 0x12
	flashData := make([]uint8, mmio.FlashSize)

	m := New(otp, flashData, nil)
	m.Reset()

	require.Equal(t, uint16(0x1234), m.CPU.PC)
	require.False(t, m.CPU.Interrupted)
}

func TestBankIndirectionSelectsOTPThenRAM(t *testing.T) {
	m := newTestMachine(t)

	m.Address.Write(mmio.PRRL, 0x02)
	m.Address.Write(mmio.PRRH, 0x00)
	require.Equal(t, m.otp[0], m.Address.Read(0x4000))

	m.Address.Write(mmio.PRRL, 0x00)
	m.Address.Write(mmio.PRRH, 0x80)
	m.Address.Write(0x4000, 0xAB)
	require.Equal(t, uint8(0xAB), m.Address.Read(0x4000))
}

// flashWindowAddr returns the CPU address in the DRR window that reaches
// flash-internal offset off, with DRR set to select a non-LCD, non-OTP
// machine-address region.
func flashWindowAddr(off uint16) uint16 {
	return 0x8000 | off
}

func TestFlashByteProgramThroughDRRWindow(t *testing.T) {
	m := newTestMachine(t)

	m.Address.Write(mmio.DRRL, 0x40)
	m.Address.Write(mmio.DRRH, 0x00)

	m.Address.Write(flashWindowAddr(0xAAA), 0xAA)
	m.Address.Write(flashWindowAddr(0x555), 0x55)
	m.Address.Write(flashWindowAddr(0xAAA), 0xA0)
	m.Address.Write(flashWindowAddr(0x0100), 0x42)

	require.Equal(t, uint8(0x42), m.Flash.Data()[0x0100])
	require.Equal(t, uint8(mmio.FlashStatusReady), m.Address.Read(flashWindowAddr(0x0100)))
}

func TestChipEraseThroughDRRWindow(t *testing.T) {
	m := newTestMachine(t)
	for i := range m.Flash.Data() {
		m.Flash.Data()[i] = 0x00
	}

	m.Address.Write(mmio.DRRL, 0x40)
	m.Address.Write(mmio.DRRH, 0x00)

	m.Address.Write(flashWindowAddr(0xAAA), 0xAA)
	m.Address.Write(flashWindowAddr(0x555), 0x55)
	m.Address.Write(flashWindowAddr(0xAAA), 0x80)
	m.Address.Write(flashWindowAddr(0xAAA), 0xAA)
	m.Address.Write(flashWindowAddr(0x555), 0x55)
	m.Address.Write(flashWindowAddr(0xAAA), 0x10)

	for _, b := range m.Flash.Data() {
		require.Equal(t, uint8(0xFF), b)
	}
}

func TestBaseTimerInterruptDispatchedOnceOverInterval(t *testing.T) {
	otp := make([]uint8, OTPSize)
	// Reset vector points into low RAM at a tiny NOP/JMP loop; the base
	// timer vector points at an RTI stub, both within the reset-time PRR
	// window's OTP mirror.
	otp[0x3FFC], otp[0x3FFD] = 0x00, 0x10 // reset -> 0x1000
	otp[0x3FEC], otp[0x3FED] = 0x00, 0x01 // base timer -> 0x0100
	flashData := make([]uint8, mmio.FlashSize)

	m := New(otp, flashData, nil)
	m.Reset()

	m.Address.Write(0x1000, 0xEA)       // NOP
	m.Address.Write(0x1001, 0x4C)       // JMP abs
	m.Address.Write(0x1002, 0x00)
	m.Address.Write(0x1003, 0x10)       // -> 0x1000
	m.Address.Write(0x0100, 0x40)       // RTI

	// IENA bit 6 (base timer), BTEN bit 0 (2 Hz channel).
	m.Address.Write(mmio.IENAL, 0x40)
	m.Address.Write(mmio.BTEN, 0x01)

	dispatches := 0
	oscCycles := uint64(0)
	for oscCycles < 8_000_000 {
		before := m.CPU.Interrupted
		cycles := m.Step()
		oscCycles += uint64(cycles) * 2
		if !before && m.CPU.Interrupted {
			dispatches++
			require.Equal(t, uint16(0x0100), m.CPU.PC)
		}
	}

	require.Equal(t, 1, dispatches)
}

func TestLCDFrameEmissionAlternatingBytes(t *testing.T) {
	m := newTestMachine(t)

	m.LCD.Write(0, mmio.LCDExtOff)
	m.LCD.Write(0, mmio.LCDColumnAddressSet)
	m.LCD.Write(1, 0)
	m.LCD.Write(1, 97)
	m.LCD.Write(0, mmio.LCDPageAddressSet)
	m.LCD.Write(1, 0)
	m.LCD.Write(1, 66)
	m.LCD.Write(0, mmio.LCDDisplayOn)
	m.LCD.Write(0, mmio.LCDEcControl)
	m.LCD.Write(1, 0x3F) // EC voltage low bits
	m.LCD.Write(1, 0x07) // EC voltage high bits: V = 511, full contrast
	m.LCD.Write(0, mmio.LCDWritingToMemory)

	const pixels = 98 * 67
	for k := 0; k < pixels; k++ {
		if k%2 == 0 {
			m.LCD.Write(1, 0x0F)
			m.LCD.Write(1, 0xF0)
		} else {
			m.LCD.Write(1, 0xF0)
			m.LCD.Write(1, 0x0F)
		}
	}

	frame, ready := m.TakeFrame()
	require.True(t, ready)
	require.Equal(t, uint8(0), frame.Pixels[0][0])
	require.Equal(t, uint8(255), frame.Pixels[1][0])
}

func TestSetButtonsRaisesPortATransitionInterrupt(t *testing.T) {
	m := newTestMachine(t)
	m.Address.Write(mmio.IENAL, 0x20)

	var state gpio.ButtonState
	state[gpio.Up] = true
	m.SetButtons(state)

	source, ok := m.Address.Intc.HighestPriority()
	require.True(t, ok)
	require.Equal(t, mmio.IntPortA, source)
}
