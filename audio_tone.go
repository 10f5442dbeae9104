// audio_tone.go - Gated square wave tone used as the CHIP-8 buzzer

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"math"
	"sync/atomic"
)

const (
	TONE_RAMP_SAMPLES = 44 // ~1ms attack/release at 44.1kHz, avoids clicks
	TONE_DUTY_CYCLE   = 0.5
)

// ToneGenerator implements AudioSink. The core flips the gate from the
// emulation goroutine; the audio callback reads it with Fill.
type ToneGenerator struct {
	gate atomic.Bool

	// Owned by the audio callback.
	phase     float64
	phaseStep float64
	level     float32
	volume    float32
}

func NewToneGenerator(freqHz float64, sampleRate int, volume float64) *ToneGenerator {
	return &ToneGenerator{
		phaseStep: freqHz / float64(sampleRate),
		volume:    float32(volume),
	}
}

func (g *ToneGenerator) StartTone() {
	g.gate.Store(true)
}

func (g *ToneGenerator) StopTone() {
	g.gate.Store(false)
}

// Fill writes mono samples in [-volume, volume].
func (g *ToneGenerator) Fill(samples []float32) {
	target := float32(0)
	if g.gate.Load() {
		target = 1
	}
	const step = float32(1.0 / TONE_RAMP_SAMPLES)

	for i := range samples {
		switch {
		case g.level < target:
			g.level = min(g.level+step, target)
		case g.level > target:
			g.level = max(g.level-step, target)
		}

		s := float32(-1)
		if g.phase < TONE_DUTY_CYCLE {
			s = 1
		}
		samples[i] = s * g.level * g.volume

		g.phase += g.phaseStep
		if g.phase >= 1 {
			g.phase -= math.Floor(g.phase)
		}
	}
}
