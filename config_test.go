// config_test.go - Machine configuration tests

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
	"image/color"
	"testing"
)

func TestDefaultMachineConfig_Valid(t *testing.T) {
	cfg := DefaultMachineConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.ClockHz != 700 || cfg.Scale != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.KeyMap) != CHIP8_KEY_COUNT {
		t.Fatalf("expected %d key bindings, got %d", CHIP8_KEY_COUNT, len(cfg.KeyMap))
	}
	for i, name := range "0123456789ABCDEF" {
		if k, ok := cfg.KeyMap[string(name)]; !ok || k != byte(i) {
			t.Fatalf("unexpected default key map: %v", cfg.KeyMap)
		}
	}
}

func TestMachineConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MachineConfig)
	}{
		{"clock below frame rate", func(c *MachineConfig) { c.ClockHz = 59 }},
		{"zero scale", func(c *MachineConfig) { c.Scale = 0 }},
		{"huge scale", func(c *MachineConfig) { c.Scale = 65 }},
		{"zero tone", func(c *MachineConfig) { c.ToneHz = 0 }},
		{"tone above nyquist", func(c *MachineConfig) { c.ToneHz = 30000 }},
		{"negative volume", func(c *MachineConfig) { c.Volume = -0.1 }},
		{"loud volume", func(c *MachineConfig) { c.Volume = 1.5 }},
		{"keypad key out of range", func(c *MachineConfig) { c.KeyMap["Q"] = 16 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMachineConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestParseRGB(t *testing.T) {
	for in, want := range map[string]uint32{
		"#33FF66":   0x33FF66,
		"33ff66":    0x33FF66,
		"0x101010":  0x101010,
		" #000000 ": 0,
		"0XFFFFFF":  0xFFFFFF,
	} {
		got, err := parseRGB(in)
		if err != nil || got != want {
			t.Fatalf("parseRGB(%q) = %06X, %v; want %06X", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "#FFF", "12345G", "0x1234567"} {
		if _, err := parseRGB(bad); err == nil {
			t.Fatalf("parseRGB(%q) accepted", bad)
		}
	}
}

func TestRGBToColor(t *testing.T) {
	want := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}
	if got := rgbToColor(0x123456); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
