package psg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPSGCRoundTrip(t *testing.T) {
	p := New()

	p.Write(0x40, 0b1011_0001) // mute, channel 0/1/3 enables

	v, ok := p.Read(0x40)
	require.True(t, ok)
	require.Equal(t, uint8(0b1011_0001), v)
}

func TestPSGMSelectsModeAndReinitializes(t *testing.T) {
	p := New()
	p.Write(0x46, 0x55) // push a PCM sample onto channel 0's FIFO

	p.Write(0x41, 0b11) // channel 0 -> ADPCM, reinitializes state

	v, ok := p.Read(0x41)
	require.True(t, ok)
	require.Equal(t, uint8(0b11), v)
	require.Empty(t, p.ch[0].pcmFIFO)
}

func TestADPCMWriteAIsDifferential(t *testing.T) {
	p := New()
	p.Write(0x41, 0b11) // channel 0 -> ADPCM

	p.writeChanA(0, 10)
	p.writeChanA(0, 5)

	require.Equal(t, []int16{10, 15}, p.ch[0].adpcmFIFO)
}

func TestADPCMWriteBIsDifferentialDecrement(t *testing.T) {
	p := New()
	p.Write(0x41, 0b11)
	p.writeChanA(0, 10)

	p.writeChanB(0, 3)

	require.Equal(t, []int16{10, 7}, p.ch[0].adpcmFIFO)
}

func TestADPCMClampRange(t *testing.T) {
	p := New()
	p.Write(0x41, 0b11)
	p.writeChanA(0, 255)
	p.writeChanA(0, 255)

	require.Equal(t, int16(256), p.ch[0].adpcmFIFO[1])
}

func TestReadChanBReportsHalfEmptyFlag(t *testing.T) {
	p := New()
	p.Write(0x46, 1)
	p.Write(0x46, 2)

	v := p.readChanB(0)

	require.Equal(t, uint8(0x22), v) // 2 queued, below 8
}

func TestPopSampleDrainsFIFOHead(t *testing.T) {
	p := New()
	p.Write(0x46, 0x10)
	p.Write(0x46, 0x20)

	p.PopSample(0)

	require.Equal(t, uint8(0x10), p.ch[0].currentPCM)
	require.Len(t, p.ch[0].pcmFIFO, 1)
}

func TestMixAveragesChannelsAndMixers(t *testing.T) {
	p := New()
	p.ch[0].currentPCM, p.ch[0].volume = 128+64, 63
	p.ch[1].currentPCM, p.ch[1].volume = 128, 0
	p.ch[2].currentPCM, p.ch[2].volume = 128, 0
	p.ch[3].currentPCM, p.ch[3].volume = 128, 0

	got := p.Mix()

	require.InDelta(t, float64(64.0/512.0/2.0/2.0), float64(got), 1e-6)
}

func TestMultiplierLatchesAlternatingHalvesAndMultipliesOnMULL(t *testing.T) {
	p := New()
	p.Write(0x51, 0x00) // latches mulH1 = 0
	p.Write(0x51, 0x02) // latches mulH0 = 2, operand1 = 2

	p.Write(0x50, 0x03) // MULL triggers: 2 * 3 = 6

	lo, _ := p.Read(0x50)
	hi, _ := p.Read(0x51)
	require.Equal(t, uint8(0x06), lo)
	require.Equal(t, uint8(0x00), hi)
}
