// Package flash implements the external SST39VF1681-class parallel NOR
// flash: a ring buffer of recent command writes matched against the
// byte-program and erase unlock sequences, and a status-read mode
// entered after a recognized command completes. Grounded on the
// reference's sst39vf1681::flash::Flash.
package flash

import "github.com/coremaze/stx2205/internal/mmio"

const (
	sectorSize = mmio.FlashSectorSize
	blockSize  = mmio.FlashBlockSize
	chipSize   = mmio.FlashSize

	// ringBufSize behaves like a fixed 6-entry ring buffer; only the erase
	// prefix's 5 entries are ever matched against, so a plain trailing
	// window of this length behaves identically to the ring buffer.
	ringBufSize = 6
)

type commandWrite struct {
	address uint32
	value   uint8
}

var byteProgramSeq = []commandWrite{
	{0xAAA, 0xAA},
	{0x555, 0x55},
	{0xAAA, 0xA0},
}

var eraseUnlockSeq = []commandWrite{
	{0xAAA, 0xAA},
	{0x555, 0x55},
	{0xAAA, 0x80},
	{0xAAA, 0xAA},
	{0x555, 0x55},
}

// Flash is the chip's full data array plus command-sequencer state.
type Flash struct {
	data []uint8

	commandWrites []commandWrite

	inStatusMode  bool
	statusAddress uint32
}

// New returns a Flash backed by data, which is copied and, if shorter
// than the chip's 2MiB capacity, repeated to fill it (mirroring how a
// dumped OTP/flash image is mapped onto the full address range).
func New(data []uint8) *Flash {
	f := &Flash{data: make([]uint8, chipSize)}
	if len(data) == 0 {
		return f
	}
	for i := range f.data {
		f.data[i] = data[i%len(data)]
	}
	return f
}

// Data returns the flash's backing bytes, for persisting to disk on
// shutdown.
func (f *Flash) Data() []uint8 {
	return f.data
}

func endsWith(buf []commandWrite, pattern []commandWrite) bool {
	if len(pattern) > len(buf) {
		return false
	}
	tail := buf[len(buf)-len(pattern):]
	for i := range pattern {
		if tail[i] != pattern[i] {
			return false
		}
	}
	return true
}

func (f *Flash) pushCommandWrite(addr uint32, value uint8) {
	f.commandWrites = append(f.commandWrites, commandWrite{addr, value})
	if len(f.commandWrites) > ringBufSize {
		f.commandWrites = f.commandWrites[len(f.commandWrites)-ringBufSize:]
	}
}

func (f *Flash) sectorErase(sector uint32) {
	base := sector * sectorSize
	for i := uint32(0); i < sectorSize; i++ {
		f.data[(base+i)%uint32(len(f.data))] = 0xFF
	}
}

func (f *Flash) blockErase(block uint32) {
	base := block * blockSize
	for i := uint32(0); i < blockSize; i++ {
		f.data[(base+i)%uint32(len(f.data))] = 0xFF
	}
}

func (f *Flash) chipErase() {
	for i := range f.data {
		f.data[i] = 0xFF
	}
}

func (f *Flash) byteProgram(addr uint32, value uint8) {
	f.data[addr%uint32(len(f.data))] = value
}

// Read returns the byte at addr: the status register if addr exactly
// matches the address status mode was entered at, otherwise raw data. A
// read at any other address leaves status mode.
func (f *Flash) Read(addr uint32) uint8 {
	if f.inStatusMode && addr == f.statusAddress {
		return mmio.FlashStatusReady
	}
	f.inStatusMode = false
	return f.data[addr%uint32(len(f.data))]
}

// Write feeds addr/value through the command sequencer: a recognized
// final write of the byte-program or erase sequence performs the
// operation, enters status-read mode keyed to addr, and clears the
// command buffer. An unrecognized write is appended to the ring buffer.
func (f *Flash) Write(addr uint32, value uint8) {
	handled := true

	switch {
	case endsWith(f.commandWrites, eraseUnlockSeq):
		switch {
		case value == 0x50:
			f.sectorErase(addr / sectorSize)
		case value == 0x30:
			f.blockErase(addr / blockSize)
		case addr == 0xAAA && value == 0x10:
			f.chipErase()
		default:
			// unrecognized erase command: ignored
		}
	case endsWith(f.commandWrites, byteProgramSeq):
		f.byteProgram(addr, value)
	default:
		f.pushCommandWrite(addr, value)
		handled = false
	}

	if handled {
		f.inStatusMode = true
		f.statusAddress = addr
		f.commandWrites = nil
	}
}
