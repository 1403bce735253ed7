package cpu

// Flags holds the six status booleans the 65C02 tracks. Bits 4 and 5 of the
// packed status byte (the unused B/reserved positions) always read back as
// zero in this core.
type Flags struct {
	N bool
	V bool
	D bool
	I bool
	Z bool
	C bool
}

// Pack returns the processor status byte: N V 0 0 D I Z C.
func (f Flags) Pack() uint8 {
	var p uint8
	if f.N {
		p |= 0x80
	}
	if f.V {
		p |= 0x40
	}
	if f.D {
		p |= 0x08
	}
	if f.I {
		p |= 0x04
	}
	if f.Z {
		p |= 0x02
	}
	if f.C {
		p |= 0x01
	}
	return p
}

// Unpack loads the six flags from a packed status byte. Bits 4 and 5 are
// ignored on pull; they are never visible to firmware.
func (f *Flags) Unpack(p uint8) {
	f.N = p&0x80 != 0
	f.V = p&0x40 != 0
	f.D = p&0x08 != 0
	f.I = p&0x04 != 0
	f.Z = p&0x02 != 0
	f.C = p&0x01 != 0
}

func (f *Flags) setNZ(v uint8) {
	f.Z = v == 0
	f.N = v&0x80 != 0
}
