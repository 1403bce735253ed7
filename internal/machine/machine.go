// Package machine assembles the full ST2205U-based device: the CPU, the
// MCU address space and its on-chip peripherals, the external flash, the
// LCD controller, and the OTP image, wired together behind the 26-bit
// machine address space the MCU's banked windows resolve into.
package machine

import (
	"log/slog"

	"github.com/coremaze/stx2205/internal/cpu"
	"github.com/coremaze/stx2205/internal/flash"
	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/lcd"
	"github.com/coremaze/stx2205/internal/mcu"
	"github.com/coremaze/stx2205/internal/mmio"
)

// OTPSize is the fixed size of the OTP image, mirrored by modulo across
// both of the machine address space's OTP-selecting region codes.
const OTPSize = mmio.OtpSize

// Machine address space region codes, the top 5 bits (addr[25:21]) of a
// 26-bit machine address.
const (
	regionLCD     = 0b00011
	regionOTPLow  = 0b00000
	regionOTPHigh = 0b11111
)

const regionShift = 21

// Machine is the complete device: CPU, MCU address space, and the three
// machine-address-space regions (LCD, OTP, external flash) a banked
// window resolves into.
type Machine struct {
	CPU     *cpu.CPU
	Address *mcu.AddressSpace
	Flash   *flash.Flash
	LCD     *lcd.Controller

	otp []uint8

	log *slog.Logger
}

// New returns a fully wired machine. otp must be exactly OTPSize bytes
// and flashData exactly mmio.FlashSize bytes — callers validate sizes
// before calling New and report a startup error otherwise.
func New(otp []uint8, flashData []uint8, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}

	m := &Machine{
		CPU:   cpu.New(),
		Flash: flash.New(flashData),
		LCD:   lcd.New(),
		otp:   otp,
		log:   log,
	}
	m.Address = mcu.New(m, func() bool { return m.CPU.Interrupted }, log)
	return m
}

// Reset loads the CPU's PC from the machine reset vector at CPU address
// 0x7FFC.
func (m *Machine) Reset() {
	m.CPU.Reset(m.Address)
}

// ReadMachine implements mcu.Machine: it decodes the 26-bit machine
// address into the LCD, OTP, or external flash region.
func (m *Machine) ReadMachine(addr uint32) uint8 {
	switch region(addr) {
	case regionLCD:
		return m.LCD.Read(uint16(addr))
	case regionOTPLow, regionOTPHigh:
		return m.otp[addr%OTPSize]
	default:
		return m.Flash.Read(addr % mmio.FlashSize)
	}
}

// WriteMachine implements mcu.Machine. Writes to the OTP region are
// logged and discarded; the OTP image is constant.
func (m *Machine) WriteMachine(addr uint32, value uint8) {
	switch region(addr) {
	case regionLCD:
		m.LCD.Write(uint16(addr), value)
	case regionOTPLow, regionOTPHigh:
		m.log.Debug("write to OTP discarded", "addr", addr, "value", value)
	default:
		m.Flash.Write(addr%mmio.FlashSize, value)
	}
}

func region(addr uint32) uint32 {
	return (addr >> regionShift) & 0x1F
}

// Step executes exactly one CPU instruction, then advances the timers
// (latching their interrupts and popping the matching PSG FIFO heads),
// latches the LCD frame interrupt, and finally dispatches any pending
// interrupt. Step takes no audio sample itself; the caller reads the mixed
// sample through AudioSample after Step returns. It returns the
// instruction-cycle count Step consumed.
func (m *Machine) Step() int {
	cycles := m.CPU.Step(m.Address)

	if m.Address.Timers.Base.Advance(uint64(cycles) * 2) {
		m.Address.Intc.Assert(mmio.IntBaseTimer)
	}

	overflowed := m.Address.Timers.Update(m.CPU.Cycles)
	for i := 0; i < 4; i++ {
		if overflowed&(1<<uint(i)) != 0 {
			m.Address.Intc.Assert(mmio.IntT0 + i)
			m.Address.PSG.PopSample(i)
		}
	}

	if m.LCD.TakeInterrupt() {
		m.Address.Intc.Assert(mmio.IntLCD)
	}

	m.dispatchInterrupt()

	return cycles
}

func (m *Machine) dispatchInterrupt() {
	if m.CPU.Interrupted || m.CPU.I {
		return
	}
	source, ok := m.Address.Intc.HighestPriority()
	if !ok {
		return
	}
	m.CPU.Dispatch(m.Address, m.Address.Intc.Vector(source))
	m.Address.Intc.Clear(source)
}

// SetButtons updates the cached button state and raises the Port-A
// transition interrupt if any of the 8 Port-A bits changed.
func (m *Machine) SetButtons(state gpio.ButtonState) {
	if m.Address.GPIO.SetInputs(state) {
		m.Address.Intc.Assert(mmio.IntPortA)
	}
}

// AudioSample returns the PSG's current mixed sample.
func (m *Machine) AudioSample() float32 {
	return m.Address.PSG.Mix()
}

// CPUCycles returns the CPU's accumulated instruction-cycle count, the
// counter the pacing driver paces against.
func (m *Machine) CPUCycles() uint64 {
	return m.CPU.Cycles
}

// TakeFrame returns the most recently emitted LCD frame and whether a
// new one has arrived since the last call.
func (m *Machine) TakeFrame() (lcd.Frame, bool) {
	return m.LCD.TakeFrame()
}

// DumpFlash reads the full 2 MiB flash image through the machine address
// space, from machine base (1 << 25), for the --save-file shutdown dump.
func (m *Machine) DumpFlash() []uint8 {
	const base = uint32(mmio.MachineResetBase)
	out := make([]uint8, mmio.FlashSize)
	for i := range out {
		out[i] = m.ReadMachine(base + uint32(i))
	}
	return out
}
