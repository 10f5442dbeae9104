// config.go - Machine and presentation configuration

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
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// MachineConfig collects everything the host can tune. The core itself only
// sees ClockHz through the frame driver.
type MachineConfig struct {
	ClockHz  int
	Scale    int
	OnColor  uint32 // 0xRRGGBB
	OffColor uint32 // 0xRRGGBB
	ToneHz   float64
	Volume   float64
	Mute     bool
	// KeyMap maps a physical key name ("0"-"9", "A"-"Z") to a keypad key.
	KeyMap map[string]byte
}

// DefaultKeyMap binds the hex digits to the keys with the same label.
func DefaultKeyMap() map[string]byte {
	m := make(map[string]byte, CHIP8_KEY_COUNT)
	for k := 0; k < CHIP8_KEY_COUNT; k++ {
		m[fmt.Sprintf("%X", k)] = byte(k)
	}
	return m
}

func DefaultMachineConfig() MachineConfig {
	return MachineConfig{
		ClockHz:  CHIP8_DEFAULT_CLOCK,
		Scale:    CHIP8_DEFAULT_SCALE,
		OnColor:  CHIP8_DEFAULT_ON_RGB,
		OffColor: CHIP8_DEFAULT_OFF_RGB,
		ToneHz:   CHIP8_DEFAULT_TONE_HZ,
		Volume:   CHIP8_DEFAULT_VOLUME,
		KeyMap:   DefaultKeyMap(),
	}
}

// Validate rejects settings the host cannot run with.
func (c MachineConfig) Validate() error {
	if c.ClockHz < CHIP8_FRAME_RATE {
		return fmt.Errorf("clock %d Hz is below the %d Hz frame rate", c.ClockHz, CHIP8_FRAME_RATE)
	}
	if c.Scale < 1 || c.Scale > 64 {
		return fmt.Errorf("scale %d out of range 1-64", c.Scale)
	}
	if c.ToneHz <= 0 || c.ToneHz > CHIP8_TONE_SAMPLE_RATE/2 {
		return fmt.Errorf("tone %.1f Hz out of range", c.ToneHz)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range 0-1", c.Volume)
	}
	for name, key := range c.KeyMap {
		if int(key) >= CHIP8_KEY_COUNT {
			return fmt.Errorf("key map %q -> %d: keypad key out of range", name, key)
		}
	}
	return nil
}

func rgbToColor(rgb uint32) color.RGBA {
	return color.RGBA{R: byte(rgb >> 16), G: byte(rgb >> 8), B: byte(rgb), A: 0xFF}
}

// parseRGB accepts "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func parseRGB(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	rgb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(rgb), nil
}
