// Package psg implements the ST2205U's 4-channel Programmable Sound
// Generator: per-channel PCM/ADPCM FIFOs, the PSGC/PSGM control
// registers, the volume-scaled mixer, and the hardware multiplier.
// PCM samples are scaled by /512 rather than the datasheet's natural
// /256, to avoid clipping when mixed with ADPCM channels.
package psg

import "github.com/coremaze/stx2205/internal/mmio"

// mode is a channel's current output mode, packed two bits per channel
// in PSGM.
type mode uint8

const (
	modePCM   mode = 0b00
	modeTone  mode = 0b01
	modeADPCM mode = 0b11
)

// channel holds one PSG channel's FIFO and current output sample. PCM
// samples are plain 8-bit values; ADPCM samples are a 9-bit signed
// differential range clamped to [-255, 256].
type channel struct {
	mode mode

	pcmFIFO   []uint8
	adpcmFIFO []int16

	currentPCM   uint8
	currentADPCM int16

	volume uint8 // 6-bit, 0-63
}

func newChannel() channel {
	return channel{mode: modePCM, currentPCM: 128}
}

func clampADPCM(v int16) int16 {
	if v < -255 {
		return -255
	}
	if v > 256 {
		return 256
	}
	return v
}

// PSG is the sound generator's full register and mixing state.
type PSG struct {
	mute, pcmEnable bool
	chanEnable      [4]bool

	ch [4]channel

	mulLatchHigh1 bool // alternates which MULH write lands in which half
	mulH0, mulH1  uint8
	mulL          uint8
	resultLow     uint8
	resultHigh    uint8
}

// New returns a PSG with all four channels defaulted to PCM-DAC mode,
// the power-on default.
func New() *PSG {
	p := &PSG{}
	for i := range p.ch {
		p.ch[i] = newChannel()
	}
	return p
}

func (p *PSG) readPSGC() uint8 {
	var v uint8
	if p.mute {
		v |= 0x01
	}
	if p.pcmEnable {
		v |= 0x08
	}
	for i, en := range p.chanEnable {
		if en {
			v |= 1 << uint(4+i)
		}
	}
	return v
}

func (p *PSG) writePSGC(value uint8) {
	p.mute = value&0x01 != 0
	p.pcmEnable = value&0x08 != 0
	for i := range p.chanEnable {
		p.chanEnable[i] = value&(1<<uint(4+i)) != 0
	}
}

func (p *PSG) readPSGM() uint8 {
	var v uint8
	for i, c := range p.ch {
		v |= uint8(c.mode) << uint(i*2)
	}
	return v
}

// writePSGM reinitializes every channel's FIFO and current sample to
// match its newly selected mode.
func (p *PSG) writePSGM(value uint8) {
	for i := range p.ch {
		m := mode((value >> uint(i*2)) & 0b11)
		switch m {
		case modeADPCM:
			p.ch[i] = channel{mode: modeADPCM, volume: p.ch[i].volume}
		case modeTone:
			p.ch[i] = channel{mode: modeTone, volume: p.ch[i].volume}
		default:
			p.ch[i] = channel{mode: modePCM, currentPCM: 128, volume: p.ch[i].volume}
		}
	}
}

func (p *PSG) writeChanA(i int, value uint8) {
	c := &p.ch[i]
	switch c.mode {
	case modeADPCM:
		var back int16
		if n := len(c.adpcmFIFO); n > 0 {
			back = c.adpcmFIFO[n-1]
		}
		c.adpcmFIFO = append(c.adpcmFIFO, clampADPCM(back+int16(value)))
	case modePCM:
		c.pcmFIFO = append(c.pcmFIFO, value)
	}
}

// writeChanB is the ADPCM differential-decrement write; it has no effect
// for channels not currently in ADPCM mode.
func (p *PSG) writeChanB(i int, value uint8) {
	c := &p.ch[i]
	if c.mode != modeADPCM {
		return
	}
	var back int16
	if n := len(c.adpcmFIFO); n > 0 {
		back = c.adpcmFIFO[n-1]
	}
	c.adpcmFIFO = append(c.adpcmFIFO, clampADPCM(back-int16(value)))
}

// readChanB returns FIFO occupancy, OR'ed with the half-empty flag
// (0x20) when occupancy is below 8.
func (p *PSG) readChanB(i int) uint8 {
	c := &p.ch[i]
	var n int
	switch c.mode {
	case modeADPCM:
		n = len(c.adpcmFIFO)
	case modePCM:
		n = len(c.pcmFIFO)
	default:
		return 0
	}
	v := uint8(n)
	if n < 8 {
		v |= 0x20
	}
	return v
}

// PopSample pops the head of channel i's FIFO into its current sample,
// called when timer-N's interrupt fires for channel N.
func (p *PSG) PopSample(i int) {
	c := &p.ch[i]
	switch c.mode {
	case modeADPCM:
		if len(c.adpcmFIFO) == 0 {
			c.currentADPCM = 0
			return
		}
		c.currentADPCM = c.adpcmFIFO[0]
		c.adpcmFIFO = c.adpcmFIFO[1:]
	case modePCM:
		if len(c.pcmFIFO) == 0 {
			c.currentPCM = 0
			return
		}
		c.currentPCM = c.pcmFIFO[0]
		c.pcmFIFO = c.pcmFIFO[1:]
	}
}

func channelFloat(c *channel) float32 {
	switch c.mode {
	case modeADPCM:
		return float32(c.currentADPCM) / 256.0
	default:
		return (float32(c.currentPCM) - 128.0) / 512.0
	}
}

func (c *channel) volumeScale() float32 {
	return float32(c.volume) / 63.0
}

// Mix returns the final mixed sample: channels 0+1 average into mixer 0,
// 2+3 average into mixer 1, and the two mixers average together.
func (p *PSG) Mix() float32 {
	mixer0 := (channelFloat(&p.ch[0])*p.ch[0].volumeScale() +
		channelFloat(&p.ch[1])*p.ch[1].volumeScale()) / 2.0
	mixer1 := (channelFloat(&p.ch[2])*p.ch[2].volumeScale() +
		channelFloat(&p.ch[3])*p.ch[3].volumeScale()) / 2.0
	return (mixer0 + mixer1) / 2.0
}

func (p *PSG) writeMULL(value uint8) {
	p.mulL = value
	operand1 := uint16(p.mulH0) | uint16(p.mulH1)<<8
	result := operand1 * uint16(p.mulL)
	p.resultLow = uint8(result)
	p.resultHigh = uint8(result >> 8)
}

// writeMULH alternates which half of the 16-bit operand it latches
// into on each successive call.
func (p *PSG) writeMULH(value uint8) {
	if p.mulLatchHigh1 {
		p.mulH0 = value
	} else {
		p.mulH1 = value
	}
	p.mulLatchHigh1 = !p.mulLatchHigh1
}

// Read dispatches a register-space read to a PSG register.
func (p *PSG) Read(addr uint16) (uint8, bool) {
	switch addr {
	case mmio.PSGC:
		return p.readPSGC(), true
	case mmio.PSGM:
		return p.readPSGM(), true
	case mmio.PSGVol0:
		return p.ch[0].volume, true
	case mmio.PSGVol1:
		return p.ch[1].volume, true
	case mmio.PSGVol2:
		return p.ch[2].volume, true
	case mmio.PSGVol3:
		return p.ch[3].volume, true
	case mmio.PSG0B:
		return p.readChanB(0), true
	case mmio.PSG1B:
		return p.readChanB(1), true
	case mmio.PSG2B:
		return p.readChanB(2), true
	case mmio.PSG3B:
		return p.readChanB(3), true
	case mmio.MULL:
		return p.resultLow, true
	case mmio.MULH:
		return p.resultHigh, true
	}
	return 0, false
}

// Write dispatches a register-space write to a PSG register.
func (p *PSG) Write(addr uint16, value uint8) bool {
	switch addr {
	case mmio.PSGC:
		p.writePSGC(value)
	case mmio.PSGM:
		p.writePSGM(value)
	case mmio.PSGVol0:
		p.ch[0].volume = value & 0x3F
	case mmio.PSGVol1:
		p.ch[1].volume = value & 0x3F
	case mmio.PSGVol2:
		p.ch[2].volume = value & 0x3F
	case mmio.PSGVol3:
		p.ch[3].volume = value & 0x3F
	case mmio.PSG0A:
		p.writeChanA(0, value)
	case mmio.PSG0B:
		p.writeChanB(0, value)
	case mmio.PSG1A:
		p.writeChanA(1, value)
	case mmio.PSG1B:
		p.writeChanB(1, value)
	case mmio.PSG2A:
		p.writeChanA(2, value)
	case mmio.PSG2B:
		p.writeChanB(2, value)
	case mmio.PSG3A:
		p.writeChanA(3, value)
	case mmio.PSG3B:
		p.writeChanB(3, value)
	case mmio.MULL:
		p.writeMULL(value)
	case mmio.MULH:
		p.writeMULH(value)
	default:
		return false
	}
	return true
}
