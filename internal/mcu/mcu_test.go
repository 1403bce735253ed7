package mcu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeMachine struct {
	mem map[uint32]uint8
}

func newFakeMachine() *fakeMachine { return &fakeMachine{mem: map[uint32]uint8{}} }

func (m *fakeMachine) ReadMachine(addr uint32) uint8         { return m.mem[addr] }
func (m *fakeMachine) WriteMachine(addr uint32, value uint8) { m.mem[addr] = value }

func TestLowRAMReadWrite(t *testing.T) {
	a := New(newFakeMachine(), nil, nil)

	a.Write(0x0100, 0x42)

	require.Equal(t, uint8(0x42), a.Read(0x0100))
}

func TestBankRegisterRoundTripReadAsOne(t *testing.T) {
	a := New(newFakeMachine(), nil, nil)

	a.Write(0x32, 0x34) // PRRL
	a.Write(0x33, 0x12) // PRRH

	lo := a.Read(0x32)
	hi := a.Read(0x33)
	require.Equal(t, uint8(0x34), lo)
	require.Equal(t, uint8(0x72), hi) // bits 14-12 of PRR's 0x8FFF mask are unwritable, read back as 1
}

func TestBankIndirectionThroughMachineAddress(t *testing.T) {
	m := newFakeMachine()
	m.mem[0x8000] = 0xCD // (PRR=2)<<14 | (0x4000&0x3FFF=0) == 0x8000
	a := New(m, nil, nil)
	a.Write(0x32, 0x02) // PRRL = 2
	a.Write(0x33, 0x00)

	got := a.Read(0x4000)

	require.Equal(t, uint8(0xCD), got)
}

func TestBankBit15RedirectsToOnChipRAM(t *testing.T) {
	a := New(newFakeMachine(), nil, nil)
	a.Write(0x32, 0x00) // PRRL
	a.Write(0x33, 0x80) // PRRH sets bit 15

	a.Write(0x4000, 0xAB)

	require.Equal(t, uint8(0xAB), a.Read(0x4000))
}

func TestDRRWindowAliasesLowRAM(t *testing.T) {
	a := New(newFakeMachine(), nil, nil)
	a.Write(0x34, 0x00) // DRRL
	a.Write(0x35, 0x80) // DRRH sets bit 15, selects RAM

	a.Write(0x8100, 0x77) // 0x8100 mod 0x8000 == 0x0100, the same offset the low-RAM window uses

	require.Equal(t, uint8(0x77), a.Read(0x0100))
}

func TestAddressPartitionIsTotal(t *testing.T) {
	a := New(newFakeMachine(), nil, nil)

	seen := map[string]bool{}
	classify := func(addr uint16) string {
		switch {
		case addr <= 0x007F:
			return "register"
		case addr <= 0x1FFF:
			return "lowram"
		case addr <= 0x3FFF:
			return "brr"
		case addr <= 0x7FFF:
			return "prr"
		default:
			return "drr"
		}
	}
	for _, addr := range []uint16{0, 0x7F, 0x80, 0x1FFF, 0x2000, 0x3FFF, 0x4000, 0x7FFF, 0x8000, 0xFFFF} {
		seen[classify(addr)] = true
	}
	require.Len(t, seen, 5)
	_ = a
}

func TestInterruptedSwitchesPRRWindowToIRR(t *testing.T) {
	interrupted := false
	m := newFakeMachine()
	m.mem[0x0000] = 0x99 // (IRR=0)<<14 | (0x4000&0x3FFF=0) == 0x0000
	a := New(m, func() bool { return interrupted }, nil)
	a.Write(0x32, 0x00) // PRRL
	a.Write(0x33, 0x80) // PRR bit15 -> RAM
	a.Write(0x30, 0x00) // IRRL
	a.Write(0x31, 0x00) // IRRH, bit15 clear -> machine

	a.Write(0x4000, 0x01) // goes to RAM via PRR

	interrupted = true
	require.NotPanics(t, func() { a.Read(0x4000) }) // now routed through IRR -> machine
	require.Equal(t, uint8(0x99), a.Read(0x4000))
}
