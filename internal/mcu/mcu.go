// Package mcu implements the ST2205U's CPU-visible address space: the
// five fixed windows (control registers, low RAM, and the three banked
// regions), on-chip RAM, and register dispatch to the on-chip
// peripherals. Mirrors addr_space::St2205uAddressSpace
// for the window layout and bit-15-redirect-to-RAM rule.
package mcu

import (
	"log/slog"

	"github.com/coremaze/stx2205/internal/dma"
	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/intc"
	"github.com/coremaze/stx2205/internal/mmio"
	"github.com/coremaze/stx2205/internal/psg"
	"github.com/coremaze/stx2205/internal/timer"
)

// lowRAMSize is the on-chip RAM's size, reached either directly through
// the low-RAM window or via a banked window's bit-15 redirect.
const lowRAMSize = 0x8000

// Machine is the 26-bit machine address space a banked window resolves
// into when its bank register's bit 15 is clear: the LCD, OTP, or
// external flash, selected by the top 5 address bits.
type Machine interface {
	ReadMachine(addr uint32) uint8
	WriteMachine(addr uint32, value uint8)
}

// AddressSpace is the complete CPU-visible 16-bit address space.
type AddressSpace struct {
	banks banks
	ram   [lowRAMSize]uint8

	Intc   *intc.Controller
	Timers *timer.Timers
	DMA    *dma.Engine
	GPIO   *gpio.Ports
	PSG    *psg.PSG

	Machine Machine

	// Interrupted reports whether the CPU is currently servicing an
	// interrupt, which substitutes IRR for PRR in the 0x4000-0x7FFF
	// window. Set by internal/machine to avoid an import cycle with
	// internal/cpu.
	Interrupted func() bool

	log *slog.Logger
}

// New returns an address space with fresh peripheral state and banks at
// their power-on defaults, wired to the given machine-level collaborator.
func New(machine Machine, interrupted func() bool, log *slog.Logger) *AddressSpace {
	if log == nil {
		log = slog.Default()
	}
	return &AddressSpace{
		banks:       newBanks(),
		Intc:        intc.New(),
		Timers:      timer.New(16_000_000),
		DMA:         dma.New(),
		GPIO:        gpio.New(),
		PSG:         psg.New(),
		Machine:     machine,
		Interrupted: interrupted,
		log:         log,
	}
}

// DRR returns the raw DRR bank register value, used by the DMA engine to
// save/restore the bank it swaps between source and destination.
func (a *AddressSpace) DRR() uint16 { return a.banks.drr.value }

// SetDRR sets the DRR bank register, used by the DMA engine.
func (a *AddressSpace) SetDRR(bank uint16) { a.banks.drr.set(bank) }

// bankWindow resolves a banked-window access. cpuAddr is the full 16-bit
// CPU address (used, modulo 32KiB, as the on-chip RAM alias so it lines
// up with the direct low-RAM window); windowOffset is cpuAddr's low
// `shift` bits, used to form the machine address.
func bankWindow(reg *bankReg, cpuAddr uint16, windowOffset uint16, shift uint, a *AddressSpace) uint8 {
	if reg.value&0x8000 != 0 {
		return a.ram[uint32(cpuAddr)%lowRAMSize]
	}
	machineAddr := uint32(reg.value&0x7FFF)<<shift | uint32(windowOffset)
	return a.Machine.ReadMachine(machineAddr)
}

func setBankWindow(reg *bankReg, cpuAddr uint16, windowOffset uint16, shift uint, value uint8, a *AddressSpace) {
	if reg.value&0x8000 != 0 {
		a.ram[uint32(cpuAddr)%lowRAMSize] = value
		return
	}
	machineAddr := uint32(reg.value&0x7FFF)<<shift | uint32(windowOffset)
	a.Machine.WriteMachine(machineAddr, value)
}

// Read implements the five-window decode. Reads are side-effecting:
// peripherals may clear status or advance a FIFO as a consequence.
func (a *AddressSpace) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x007F:
		if v, ok := a.readReg(addr); ok {
			return v
		}
		return 0
	case addr <= 0x1FFF:
		return a.ram[addr]
	case addr <= 0x3FFF:
		return bankWindow(&a.banks.brr, addr, addr&0x1FFF, 13, a)
	case addr <= 0x7FFF:
		reg := &a.banks.prr
		if a.Interrupted != nil && a.Interrupted() {
			reg = &a.banks.irr
		}
		return bankWindow(reg, addr, addr&0x3FFF, 14, a)
	default:
		return bankWindow(&a.banks.drr, addr, addr&0x7FFF, 15, a)
	}
}

// Write implements the five-window decode's write side.
func (a *AddressSpace) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x007F:
		if !a.writeReg(addr, value) {
			a.log.Debug("write to unimplemented MMIO register ignored", "addr", addr, "value", value)
		}
	case addr <= 0x1FFF:
		a.ram[addr] = value
	case addr <= 0x3FFF:
		setBankWindow(&a.banks.brr, addr, addr&0x1FFF, 13, value, a)
	case addr <= 0x7FFF:
		reg := &a.banks.prr
		if a.Interrupted != nil && a.Interrupted() {
			reg = &a.banks.irr
		}
		setBankWindow(reg, addr, addr&0x3FFF, 14, value, a)
	default:
		setBankWindow(&a.banks.drr, addr, addr&0x7FFF, 15, value, a)
	}
}

func (a *AddressSpace) readReg(addr uint16) (uint8, bool) {
	if v, ok := a.GPIO.Read(addr); ok {
		return v, true
	}
	if v, ok := a.Timers.Read(addr); ok {
		return v, true
	}
	if v, ok := a.Intc.Read(addr); ok {
		return v, true
	}
	if v, ok := a.PSG.Read(addr); ok {
		return v, true
	}
	if v, ok := a.DMA.Read(addr); ok {
		return v, true
	}
	return a.readBankReg(addr)
}

func (a *AddressSpace) writeReg(addr uint16, value uint8) bool {
	if a.GPIO.Write(addr, value) {
		return true
	}
	if a.Timers.Write(addr, value) {
		return true
	}
	if a.Intc.Write(addr, value) {
		return true
	}
	if a.PSG.Write(addr, value) {
		return true
	}
	if a.DMA.Write(a, addr, value) {
		return true
	}
	return a.writeBankReg(addr, value)
}

func (a *AddressSpace) readBankReg(addr uint16) (uint8, bool) {
	switch addr {
	case mmio.IRRL:
		return a.banks.irr.low(), true
	case mmio.IRRH:
		return a.banks.irr.high(), true
	case mmio.PRRL:
		return a.banks.prr.low(), true
	case mmio.PRRH:
		return a.banks.prr.high(), true
	case mmio.DRRL:
		return a.banks.drr.low(), true
	case mmio.DRRH:
		return a.banks.drr.high(), true
	case mmio.BRRL:
		return a.banks.brr.low(), true
	case mmio.BRRH:
		return a.banks.brr.high(), true
	}
	return 0, false
}

func (a *AddressSpace) writeBankReg(addr uint16, value uint8) bool {
	switch addr {
	case mmio.IRRL:
		a.banks.irr.setLow(value)
	case mmio.IRRH:
		a.banks.irr.setHigh(value)
	case mmio.PRRL:
		a.banks.prr.setLow(value)
	case mmio.PRRH:
		a.banks.prr.setHigh(value)
	case mmio.DRRL:
		a.banks.drr.setLow(value)
	case mmio.DRRH:
		a.banks.drr.setHigh(value)
	case mmio.BRRL:
		a.banks.brr.setLow(value)
	case mmio.BRRH:
		a.banks.brr.setHigh(value)
	default:
		return false
	}
	return true
}
