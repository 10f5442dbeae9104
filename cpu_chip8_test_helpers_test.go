// cpu_chip8_test_helpers_test.go - Shared fixtures for CHIP-8 tests

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
	"bytes"
	"testing"
)

// sequenceRandom returns its bytes in order, wrapping around.
type sequenceRandom struct {
	values []byte
	pos    int
}

func (r *sequenceRandom) Byte() byte {
	if len(r.values) == 0 {
		return 0
	}
	b := r.values[r.pos%len(r.values)]
	r.pos++
	return b
}

// recordingAudio logs every intent it receives.
type recordingAudio struct {
	events []string
}

func (a *recordingAudio) StartTone() { a.events = append(a.events, "start") }
func (a *recordingAudio) StopTone()  { a.events = append(a.events, "stop") }

type chip8Rig struct {
	cpu    *Chip8CPU
	video  *VideoMemory
	keypad *Keypad
	random *sequenceRandom
	audio  *recordingAudio
}

func newChip8Rig(t *testing.T, words ...uint16) *chip8Rig {
	t.Helper()
	rig := &chip8Rig{
		video:  &VideoMemory{},
		keypad: &Keypad{},
		random: &sequenceRandom{},
		audio:  &recordingAudio{},
	}
	rig.cpu = NewChip8CPU(rig.video, rig.keypad, rig.random, rig.audio)
	if len(words) > 0 {
		if err := rig.cpu.LoadProgram(assemble(words...)); err != nil {
			t.Fatalf("LoadProgram: %v", err)
		}
	}
	return rig
}

// step runs n cycles and fails the test on any machine error.
func (r *chip8Rig) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := r.cpu.Cycle(); err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
	}
}

// exec runs a single instruction word at the current PC.
func (r *chip8Rig) exec(t *testing.T, word uint16) {
	t.Helper()
	if err := r.cpu.DecodeExecute(word); err != nil {
		t.Fatalf("DecodeExecute(%04X): %v", word, err)
	}
}

func assemble(words ...uint16) []byte {
	out := make([]byte, 0, len(words)*2)
	for _, w := range words {
		out = append(out, byte(w>>8), byte(w))
	}
	return out
}

// captureLog redirects diagnostics for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := setLogOutput(&buf)
	t.Cleanup(func() { setLogOutput(prev) })
	return &buf
}
