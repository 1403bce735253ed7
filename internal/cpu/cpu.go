// Package cpu implements the WDC 65C02 instruction set used by the
// ST2205U, including the Rockwell bit-branch/bit-set/bit-reset extensions.
// It follows a fetch/decode/execute loop with explicit register fields
// and a cycle count returned per step, covering the full opcode table
// including all addressing modes.
package cpu

import (
	"fmt"

	"github.com/coremaze/stx2205/internal/mmio"
)

// CPU holds the 65C02 register file and the two monotonic cycle counters
// the pacing driver and the timers depend on.
type CPU struct {
	A, X, Y, SP uint8
	PC          uint16
	Flags

	// Interrupted is true from interrupt entry until RTI, and gates the
	// PRR/IRR bank selection in the MCU address space as well as the
	// dispatcher's re-entrancy check.
	Interrupted bool

	// Cycles is the accumulated instruction-cycle count. OscillatorCycles
	// is always 2*Cycles, the ratio between the CPU clock and the
	// oscillator the timers and pacer measure against.
	Cycles uint64

	// Halted is set by STP. Nothing in this core clears it; a halted CPU
	// simply stops consuming instructions if the driver checks it. Step
	// treats STP as a plain no-op otherwise, and Halted exists only for
	// callers that want to observe it.
	Halted bool
}

// New returns a CPU with registers zeroed, matching power-on state before
// Reset loads the reset vector.
func New() *CPU {
	return &CPU{}
}

// OscillatorCycles derives the oscillator-cycle count from the
// instruction-cycle counter: the CPU advances one instruction cycle per
// two oscillator cycles.
func (c *CPU) OscillatorCycles() uint64 {
	return c.Cycles * 2
}

// String renders the register file and packed status byte, for printing
// CPU state on a failing test rather than stepping through a debugger.
func (c *CPU) String() string {
	return fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X cycles=%d",
		c.PC, c.A, c.X, c.Y, c.SP, c.Flags.Pack(), c.Cycles)
}

// effSP returns the full 9-bit effective stack address, always in
// 0x100..0x1FF.
func (c *CPU) effSP() uint16 {
	return 0x100 | uint16(c.SP)
}

func (c *CPU) push8(bus Bus, v uint8) {
	bus.Write(c.effSP(), v)
	c.SP--
}

func (c *CPU) pop8(bus Bus) uint8 {
	c.SP++
	return bus.Read(c.effSP())
}

func (c *CPU) push16(bus Bus, v uint16) {
	c.push8(bus, uint8(v>>8))
	c.push8(bus, uint8(v))
}

func (c *CPU) pop16(bus Bus) uint16 {
	lo := c.pop8(bus)
	hi := c.pop8(bus)
	return combine(hi, lo)
}

// Reset loads PC from the machine reset vector. The in-interrupt latch is
// forced true for the duration of the vector fetch and cleared after,
// Interrupted is asserted for the duration, matching a real reset sequence.
func (c *CPU) Reset(bus Bus) {
	c.Interrupted = true
	lo := bus.Read(mmio.VecRST)
	hi := bus.Read(mmio.VecRST + 1)
	c.PC = combine(hi, lo)
	c.Interrupted = false
}

// Dispatch enters an interrupt handler: push return PC and status, set the
// in-interrupt latch, and load PC from the given vector address. Callers
// (internal/machine, via the interrupt controller) only invoke this when
// the I flag is clear and the CPU is not already servicing an interrupt.
func (c *CPU) Dispatch(bus Bus, vectorAddr uint16) {
	c.push16(bus, c.PC)
	c.push8(bus, c.Flags.Pack())
	c.Interrupted = true
	c.I = true
	c.D = false
	lo := bus.Read(vectorAddr)
	hi := bus.Read(vectorAddr + 1)
	c.PC = combine(hi, lo)
}

// Step decodes and executes exactly one instruction, returning the number
// of instruction cycles it consumed. It always advances Cycles by at least
// one, satisfying the pacing driver's contract.
func (c *CPU) Step(bus Bus) int {
	opcode := bus.Read(c.PC)
	c.PC++
	entry := opcodeTable[opcode]

	op := c.decodeOperand(bus, entry.mode)

	cycles := int(entry.cycles)
	if entry.pageSensitive && op.pageCrossed {
		cycles++
	}

	cycles += c.execute(bus, entry, op)

	if cycles < 1 {
		cycles = 1
	}
	c.Cycles += uint64(cycles)
	return cycles
}
