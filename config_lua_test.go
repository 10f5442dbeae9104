// config_lua_test.go - Lua configuration script tests

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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	lua "github.com/yuin/gopher-lua"
)

func TestLoadConfigString_AllGlobals(t *testing.T) {
	cfg := DefaultMachineConfig()
	err := LoadConfigString(`
		clock_hz  = 1000
		scale     = 12
		on_color  = "#33FF66"
		off_color = 0x101010
		tone_hz   = 880
		volume    = 0.5
		mute      = true
		keymap    = { ["1"]=0x1, q=0x4, X=0x0 }
	`, &cfg)
	if err != nil {
		t.Fatalf("LoadConfigString: %v", err)
	}

	want := MachineConfig{
		ClockHz:  1000,
		Scale:    12,
		OnColor:  0x33FF66,
		OffColor: 0x101010,
		ToneHz:   880,
		Volume:   0.5,
		Mute:     true,
		KeyMap:   map[string]byte{"1": 1, "Q": 4, "X": 0},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigString_UnsetKeepsDefaults(t *testing.T) {
	cfg := DefaultMachineConfig()
	if err := LoadConfigString(`scale = 4`, &cfg); err != nil {
		t.Fatalf("LoadConfigString: %v", err)
	}
	want := DefaultMachineConfig()
	want.Scale = 4
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigString_ComputedValues(t *testing.T) {
	cfg := DefaultMachineConfig()
	if err := LoadConfigString(`clock_hz = 60 * 20`, &cfg); err != nil {
		t.Fatalf("LoadConfigString: %v", err)
	}
	if cfg.ClockHz != 1200 {
		t.Fatalf("expected 1200, got %d", cfg.ClockHz)
	}
}

func TestLoadConfigString_Errors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"non-integer clock", `clock_hz = 700.5`, "expected integer"},
		{"string scale", `scale = "big"`, "expected number"},
		{"bad color", `on_color = "#GG0000"`, "on_color"},
		{"color out of range", `off_color = 0x1000000`, "out of range"},
		{"mute type", `mute = 1`, "expected boolean"},
		{"keymap type", `keymap = "qwerty"`, "expected table"},
		{"unknown key", `keymap = { F1 = 1 }`, "unknown key"},
		{"keypad range", `keymap = { Q = 16 }`, "0-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMachineConfig()
			err := LoadConfigString(tt.src, &cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigString_SyntaxError(t *testing.T) {
	cfg := DefaultMachineConfig()
	err := LoadConfigString(`clock_hz = `, &cfg)
	var apiErr *lua.ApiError
	if !errors.As(err, &apiErr) || apiErr.Type != lua.ApiErrorSyntax {
		t.Fatalf("expected lua syntax error, got %v", err)
	}
}

func TestLoadConfigScript_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chip8.lua")
	if err := os.WriteFile(path, []byte("clock_hz = 540\nmute = true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := DefaultMachineConfig()
	if err := LoadConfigScript(path, &cfg); err != nil {
		t.Fatalf("LoadConfigScript: %v", err)
	}
	if cfg.ClockHz != 540 || !cfg.Mute {
		t.Fatalf("unexpected config %+v", cfg)
	}

	missing := filepath.Join(t.TempDir(), "missing.lua")
	err := LoadConfigScript(missing, &cfg)
	if !errors.Is(err, fs.ErrNotExist) || !strings.Contains(err.Error(), missing) {
		t.Fatalf("expected not-exist error naming %s, got %v", missing, err)
	}
}

func TestLoadConfigScript_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lua")
	if err := os.WriteFile(path, []byte("scale = \"big\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := DefaultMachineConfig()
	err := LoadConfigScript(path, &cfg)
	if err == nil || !strings.Contains(err.Error(), "config "+path) {
		t.Fatalf("expected error naming %s, got %v", path, err)
	}
}
