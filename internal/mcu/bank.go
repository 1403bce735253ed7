package mcu

import "github.com/coremaze/stx2205/internal/bit"

// bankReg is a 16-bit register with a fixed writable-bit mask. Writes are
// ANDed with the mask; reads OR the stored value with the inverted mask so
// unused bits read back as 1.
type bankReg struct {
	value uint16
	mask  uint16
}

func newBankReg(initial, mask uint16) bankReg {
	return bankReg{value: initial & mask, mask: mask}
}

func (b *bankReg) get() uint16 {
	return b.value | ^b.mask
}

func (b *bankReg) set(v uint16) {
	b.value = v & b.mask
}

func (b *bankReg) low() uint8 {
	return bit.Low(b.get())
}

func (b *bankReg) high() uint8 {
	return bit.High(b.get())
}

func (b *bankReg) setLow(v uint8) {
	b.set(bit.Combine(bit.High(b.value), v))
}

func (b *bankReg) setHigh(v uint8) {
	b.set(bit.Combine(v, bit.Low(b.value)))
}

// banks holds the four bank registers. BRR's mask disables bits 13-14
// (0x9FFF); PRR/IRR mask bits 12-14 (0x8FFF); DRR masks bits 11-14
// (0x87FF). BRR alone powers on nonzero (bit 15 set).
type banks struct {
	brr bankReg
	prr bankReg
	irr bankReg
	drr bankReg
}

func newBanks() banks {
	return banks{
		brr: newBankReg(0x8000, 0x9FFF),
		prr: newBankReg(0x0000, 0x8FFF),
		irr: newBankReg(0x0000, 0x8FFF),
		drr: newBankReg(0x0000, 0x87FF),
	}
}
