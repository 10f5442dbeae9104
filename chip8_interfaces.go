// chip8_interfaces.go - Capabilities the CHIP-8 core consumes from its host

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
	"math/rand/v2"
	"sync"
)

// KeypadInput reports the instantaneous state of the 16 logical keys.
type KeypadInput interface {
	IsKeyDown(key byte) bool
	// AnyKeyDown returns the lowest numbered key currently held.
	AnyKeyDown() (byte, bool)
}

// RandomSource feeds the RND instruction.
type RandomSource interface {
	Byte() byte
}

// AudioSink receives tone intents issued on sound timer edges. Both calls
// must be idempotent.
type AudioSink interface {
	StartTone()
	StopTone()
}

// Keypad is the host-side key state shared by presenters and the core.
// Hosts that poll input on another goroutine (terminal mode) rely on the
// mutex; the core itself only reads.
type Keypad struct {
	mu   sync.RWMutex
	keys [CHIP8_KEY_COUNT]bool
}

func (k *Keypad) IsKeyDown(key byte) bool {
	if int(key) >= CHIP8_KEY_COUNT {
		return false
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys[key]
}

func (k *Keypad) AnyKeyDown() (byte, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	for i, down := range k.keys {
		if down {
			return byte(i), true
		}
	}
	return 0, false
}

// SetKey records a key transition. Out of range keys are ignored.
func (k *Keypad) SetKey(key byte, down bool) {
	if int(key) >= CHIP8_KEY_COUNT {
		return
	}
	k.mu.Lock()
	k.keys[key] = down
	k.mu.Unlock()
}

// SetAll replaces the whole key state, as polled once per frame.
func (k *Keypad) SetAll(keys [CHIP8_KEY_COUNT]bool) {
	k.mu.Lock()
	k.keys = keys
	k.mu.Unlock()
}

// mathRandSource is the default RandomSource backed by the runtime's
// auto-seeded generator.
type mathRandSource struct{}

func (mathRandSource) Byte() byte {
	return byte(rand.Uint32())
}

// silentAudio discards tone intents.
type silentAudio struct{}

func (silentAudio) StartTone() {}
func (silentAudio) StopTone()  {}
