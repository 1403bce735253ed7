// Package pacer implements the real-time pacing driver: it computes how
// many instruction cycles the core should have executed by now from
// wall-clock elapsed time, steps the core until it catches up, and pumps
// the input, screen, and audio collaborators around each step.
//
// Grounded on the ticker/limiter split in a Game Boy emulator's timing
// package, adapted from a fixed-cycles-per-frame limiter to the direct
// elapsed-time-to-cycles formula this device's driver contract uses.
package pacer

import (
	"time"

	"github.com/coremaze/stx2205/internal/gpio"
	"github.com/coremaze/stx2205/internal/lcd"
)

// CyclesPerSecond is the CPU instruction-cycle rate the pacer paces
// against: half the 16,000,000 Hz oscillator frequency, since each
// instruction cycle spans two oscillator cycles.
const CyclesPerSecond = 8_000_000

// AudioBatchSize is the number of samples the pacer accumulates before
// handing a batch to the audio sink, matching a typical host sink buffer.
const AudioBatchSize = 512

// Core is the surface the pacer drives: one instruction per Step call,
// its monotonic cycle counter, and the collaborators it feeds.
type Core interface {
	Step() int
	CPUCycles() uint64
	SetButtons(gpio.ButtonState)
	TakeFrame() (lcd.Frame, bool)
	AudioSample() float32
}

// Screen receives frames as the core emits them.
type Screen interface {
	PushFrame(lcd.Frame)
}

// Input supplies the current button state, polled once per Run call.
type Input interface {
	Poll() gpio.ButtonState
}

// AudioSink receives batches of mixed PSG samples.
type AudioSink interface {
	PushSamples([]float32)
}

// Pacer drives a Core in real time, stepping it until its accumulated
// instruction cycles match wall-clock elapsed time.
type Pacer struct {
	core   Core
	screen Screen
	input  Input
	audio  AudioSink

	start    time.Time
	startCPU uint64

	audioBuf []float32
}

// New returns a pacer whose clock starts now. screen, input, and audio
// may be nil to disable that collaborator.
func New(core Core, screen Screen, input Input, audio AudioSink) *Pacer {
	return &Pacer{
		core:     core,
		screen:   screen,
		input:    input,
		audio:    audio,
		start:    time.Now(),
		startCPU: core.CPUCycles(),
		audioBuf: make([]float32, 0, AudioBatchSize),
	}
}

// Reset rebases the pacer's wall clock to now, useful after a pause.
func (p *Pacer) Reset() {
	p.start = time.Now()
	p.startCPU = p.core.CPUCycles()
}

// Run polls input once, then steps the core until its accumulated
// instruction cycles catch up to the cycles required by elapsed wall
// time, pumping the screen and audio collaborators after each step.
// The host loop calls Run repeatedly, as fast or as slow as it likes;
// Run never blocks and never oversteps.
func (p *Pacer) Run() {
	if p.input != nil {
		p.core.SetButtons(p.input.Poll())
	}

	elapsed := time.Since(p.start)
	required := p.startCPU + uint64(elapsed.Nanoseconds())*CyclesPerSecond/1_000_000_000

	for p.core.CPUCycles() < required {
		p.core.Step()

		if frame, ready := p.core.TakeFrame(); ready && p.screen != nil {
			p.screen.PushFrame(frame)
		}

		if p.audio != nil {
			p.collectSample()
		}
	}
}

func (p *Pacer) collectSample() {
	p.audioBuf = append(p.audioBuf, p.core.AudioSample())
	if len(p.audioBuf) >= AudioBatchSize {
		p.audio.PushSamples(p.audioBuf)
		p.audioBuf = p.audioBuf[:0]
	}
}
