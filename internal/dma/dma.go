// Package dma implements the ST2205U's DMA engine: a source and a
// destination pointer/bank pair, a transfer-length register, and the
// Continue/Reload/Fixed pointer update modes. The reference's own dma
// module is an unimplemented stub (every register access just logs), so
// this package is built directly from the register and transfer
// semantics spec.md describes.
package dma

import "github.com/coremaze/stx2205/internal/mmio"

// updateMode is the per-side 2-bit pointer update mode packed into DMOD.
type updateMode uint8

const (
	modeContinue updateMode = 0b00
	modeReload   updateMode = 0b01
	modeFixed    updateMode = 0b10
)

func decodeMode(field uint8) updateMode {
	if field&0b10 != 0 {
		return modeFixed
	}
	if field == 0b01 {
		return modeReload
	}
	return modeContinue
}

// Bus is the machine-address surface the DMA engine copies through: the
// DRR-mapped banked window, with direct control over DRR so the engine
// can swap banks per side mid-transfer.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	DRR() uint16
	SetDRR(bank uint16)
}

// Engine is the DMA engine's register file and transfer logic.
type Engine struct {
	srcPtr, dstPtr   uint16
	srcBank, dstBank uint16
	count            uint16
	dsel             uint8 // 2-bit: which pointer/bank pair byte writes address
	dmod             uint8 // 2-bit src field (bits 1:0), 2-bit dst field (bits 3:2)
}

// New returns an engine with all registers at their power-on value of
// zero.
func New() *Engine {
	return &Engine{}
}

func (e *Engine) srcMode() updateMode { return decodeMode(e.dmod & 0x03) }
func (e *Engine) dstMode() updateMode { return decodeMode((e.dmod >> 2) & 0x03) }

// selectedIsSource reports whether DSEL currently addresses the source
// pointer/bank pair: DSEL bit 0 clear selects source, bit 0 set selects
// destination, matching the single DSEL bit spec.md assigns real meaning to.
func (e *Engine) selectedIsSource() bool { return e.dsel&0x01 == 0 }

func (e *Engine) readPTRL() uint8 {
	if e.selectedIsSource() {
		return uint8(e.srcPtr)
	}
	return uint8(e.dstPtr)
}

func (e *Engine) readPTRH() uint8 {
	if e.selectedIsSource() {
		return uint8(e.srcPtr >> 8)
	}
	return uint8(e.dstPtr >> 8)
}

func (e *Engine) writePTRL(v uint8) {
	if e.selectedIsSource() {
		e.srcPtr = e.srcPtr&0xFF00 | uint16(v)
	} else {
		e.dstPtr = e.dstPtr&0xFF00 | uint16(v)
	}
}

func (e *Engine) writePTRH(v uint8) {
	if e.selectedIsSource() {
		e.srcPtr = uint16(v)<<8 | e.srcPtr&0x00FF
	} else {
		e.dstPtr = uint16(v)<<8 | e.dstPtr&0x00FF
	}
}

func (e *Engine) readBKRL() uint8 {
	if e.selectedIsSource() {
		return uint8(e.srcBank)
	}
	return uint8(e.dstBank)
}

func (e *Engine) readBKRH() uint8 {
	if e.selectedIsSource() {
		return uint8(e.srcBank >> 8)
	}
	return uint8(e.dstBank >> 8)
}

func (e *Engine) writeBKRL(v uint8) {
	if e.selectedIsSource() {
		e.srcBank = e.srcBank&0xFF00 | uint16(v)
	} else {
		e.dstBank = e.dstBank&0xFF00 | uint16(v)
	}
}

func (e *Engine) writeBKRH(v uint8) {
	if e.selectedIsSource() {
		e.srcBank = uint16(v)<<8 | e.srcBank&0x00FF
	} else {
		e.dstBank = uint16(v)<<8 | e.dstBank&0x00FF
	}
}

// Transfer performs the N-byte copy triggered by a write to DCNTH. DRR
// and both pointer registers are saved, the engine swaps DRR to the
// source bank for each read and the destination bank for each write, and
// restores DRR (and any Reload-mode pointer) when done.
func (e *Engine) Transfer(bus Bus) {
	savedDRR := bus.DRR()
	savedSrcPtr := e.srcPtr
	savedDstPtr := e.dstPtr

	for i := uint32(0); i < uint32(e.count); i++ {
		bus.SetDRR(e.srcBank)
		value := bus.Read(e.srcPtr | 0x8000)

		bus.SetDRR(e.dstBank)
		bus.Write(e.dstPtr|0x8000, value)

		if e.srcMode() != modeFixed {
			e.srcPtr++
		}
		if e.dstMode() != modeFixed {
			e.dstPtr++
		}
	}

	bus.SetDRR(savedDRR)
	if e.srcMode() == modeReload {
		e.srcPtr = savedSrcPtr
	}
	if e.dstMode() == modeReload {
		e.dstPtr = savedDstPtr
	}
}

// Read dispatches a register-space read to a DMA register.
func (e *Engine) Read(addr uint16) (uint8, bool) {
	switch addr {
	case mmio.DPTRL:
		return e.readPTRL(), true
	case mmio.DPTRH:
		return e.readPTRH(), true
	case mmio.DBKRL:
		return e.readBKRL(), true
	case mmio.DBKRH:
		return e.readBKRH(), true
	case mmio.DCNTL:
		return uint8(e.count), true
	case mmio.DCNTH:
		return uint8(e.count >> 8), true
	case mmio.DSEL:
		return e.dsel, true
	case mmio.DMOD:
		return e.dmod, true
	}
	return 0, false
}

// Write dispatches a register-space write to a DMA register. Writing
// DCNTH both latches the high count byte and triggers the transfer, so
// the caller must pass the Bus used to perform it.
func (e *Engine) Write(bus Bus, addr uint16, value uint8) bool {
	switch addr {
	case mmio.DPTRL:
		e.writePTRL(value)
	case mmio.DPTRH:
		e.writePTRH(value)
	case mmio.DBKRL:
		e.writeBKRL(value)
	case mmio.DBKRH:
		e.writeBKRH(value)
	case mmio.DCNTL:
		e.count = e.count&0xFF00 | uint16(value)
	case mmio.DCNTH:
		e.count = uint16(value)<<8 | e.count&0x00FF
		e.Transfer(bus)
	case mmio.DSEL:
		e.dsel = value & 0x03
	case mmio.DMOD:
		e.dmod = value & 0x3F
	default:
		return false
	}
	return true
}
