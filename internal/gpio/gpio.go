// Package gpio implements the ST2205U's general-purpose I/O ports: the
// 14-button Port A/Port B input mapping, port-A transition detection, and
// the remaining port registers, which are modeled as inert bit-masked
// storage.
package gpio

import "github.com/coremaze/stx2205/internal/mmio"

// Button identifies one of the device's 14 physical inputs, at the bit
// position the frozen Port A/Port B mapping assigns it.
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Power
	Menu
	UpsideUp
	UpsideDown
	ScreenTopLeft
	ScreenTopRight
	ScreenBottomLeft
	ScreenBottomRight
	Action
	Mute
)

// ButtonState is the pressed/released state of all 14 buttons, indexed by
// Button.
type ButtonState [14]bool

// plainReg is an inert byte register with a fixed writable-bit mask and
// read-as-1 on unused bits.
type plainReg struct {
	value uint8
	mask  uint8
}

func newPlainReg(initial, mask uint8) plainReg {
	return plainReg{value: initial & mask, mask: mask}
}

func (r *plainReg) get() uint8    { return r.value | ^r.mask }
func (r *plainReg) set(v uint8)   { r.value = v & r.mask }

// Ports is the GPIO register file.
type Ports struct {
	lastState ButtonState

	pc, pd, pe, pf, pl plainReg
	psc, pse           plainReg
	pca, pcb, pcc      plainReg
	pcd, pce, pcf, pcl plainReg
	pfc, pfd           plainReg
	pmcr               plainReg
}

// New returns a port file at its power-on register defaults.
func New() *Ports {
	return &Ports{
		pc: newPlainReg(0xFF, 0xFF),
		pd: newPlainReg(0xFF, 0xFF),
		pe: newPlainReg(0xFF, 0xFF),
		pf: newPlainReg(0xFF, 0xFF),
		pl: newPlainReg(0xFF, 0xFF),

		psc: newPlainReg(0xFF, 0xFF),
		pse: newPlainReg(0xFF, 0xFF),

		pca: newPlainReg(0x00, 0xFF),
		pcb: newPlainReg(0x00, 0xFF),
		pcc: newPlainReg(0x00, 0xFF),
		pcd: newPlainReg(0x00, 0xFF),
		pce: newPlainReg(0x00, 0xFF),
		pcf: newPlainReg(0x00, 0xFF),
		pcl: newPlainReg(0x00, 0xFF),

		pfc: newPlainReg(0x00, 0xFF),
		pfd: newPlainReg(0x00, 0xFE),
		pmcr: newPlainReg(0x80, 0xFF),
	}
}

// SetInputs replaces the cached button state and reports whether any of
// the 8 Port A bits (buttons 0-7) changed, which the caller should use to
// raise the port-A transition interrupt.
func (p *Ports) SetInputs(newState ButtonState) bool {
	changed := false
	for i := 0; i < 8; i++ {
		if newState[i] != p.lastState[i] {
			changed = true
			break
		}
	}
	p.lastState = newState
	return changed
}

func (p *Ports) readPA() uint8 {
	var result uint8
	for i := 0; i < 8; i++ {
		if p.lastState[i] {
			result |= 1 << uint(i)
		}
	}
	return ^result
}

func (p *Ports) readPB() uint8 {
	var result uint8
	for i := 0; i < 6; i++ {
		if p.lastState[8+i] {
			result |= 1 << uint(i)
		}
	}
	return ^result
}

// Read dispatches a register-space read to a GPIO register.
func (p *Ports) Read(addr uint16) (uint8, bool) {
	switch addr {
	case mmio.PA:
		return p.readPA(), true
	case mmio.PB:
		return p.readPB(), true
	case mmio.PC:
		return p.pc.get(), true
	case mmio.PD:
		return p.pd.get(), true
	case mmio.PE:
		return p.pe.get(), true
	case mmio.PF:
		return p.pf.get(), true
	case mmio.PL:
		return p.pl.get(), true
	case mmio.PSC:
		return p.psc.get(), true
	case mmio.PSE:
		return p.pse.get(), true
	case mmio.PCA:
		return p.pca.get(), true
	case mmio.PCB:
		return p.pcb.get(), true
	case mmio.PCC:
		return p.pcc.get(), true
	case mmio.PCD:
		return p.pcd.get(), true
	case mmio.PCE:
		return p.pce.get(), true
	case mmio.PCF:
		return p.pcf.get(), true
	case mmio.PCL:
		return p.pcl.get(), true
	case mmio.PFC:
		return p.pfc.get(), true
	case mmio.PFD:
		return p.pfd.get(), true
	case mmio.PMCR:
		return p.pmcr.get(), true
	}
	return 0, false
}

// Write dispatches a register-space write. PA and PB are read-only
// (button inputs); writes to them are accepted and ignored.
func (p *Ports) Write(addr uint16, value uint8) bool {
	switch addr {
	case mmio.PA, mmio.PB, mmio.PL:
		// inputs / unimplemented output: accepted, no effect
	case mmio.PC:
		p.pc.set(value)
	case mmio.PD:
		p.pd.set(value)
	case mmio.PE:
		p.pe.set(value)
	case mmio.PF:
		p.pf.set(value)
	case mmio.PSC:
		p.psc.set(value)
	case mmio.PSE:
		p.pse.set(value)
	case mmio.PCA:
		p.pca.set(value)
	case mmio.PCB:
		p.pcb.set(value)
	case mmio.PCC:
		p.pcc.set(value)
	case mmio.PCD:
		p.pcd.set(value)
	case mmio.PCE:
		p.pce.set(value)
	case mmio.PCF:
		p.pcf.set(value)
	case mmio.PCL:
		p.pcl.set(value)
	case mmio.PFC:
		p.pfc.set(value)
	case mmio.PFD:
		p.pfd.set(value)
	case mmio.PMCR:
		p.pmcr.set(value)
	default:
		return false
	}
	return true
}
