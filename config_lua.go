// config_lua.go - Lua configuration scripts

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
	"math"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

/*
A config script is plain Lua that assigns globals. Unset globals keep their
defaults. Example:

	clock_hz = 1000
	scale    = 12
	on_color = "#33FF66"
	off_color = 0x101010
	tone_hz  = 440
	volume   = 0.3
	mute     = false
	keymap   = { ["1"]=0x1, ["2"]=0x2, ["3"]=0x3, ["4"]=0xC,
	             Q=0x4, W=0x5, E=0x6, R=0xD,
	             A=0x7, S=0x8, D=0x9, F=0xE,
	             Z=0xA, X=0x0, C=0xB, V=0xF }
*/

// LoadConfigScript runs the Lua file at path and applies its globals to cfg.
func LoadConfigScript(path string, cfg *MachineConfig) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if err := LoadConfigString(string(src), cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// LoadConfigString is LoadConfigScript for an in-memory script.
func LoadConfigString(src string, cfg *MachineConfig) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return err
	}
	return applyLuaConfig(L, cfg)
}

func applyLuaConfig(L *lua.LState, cfg *MachineConfig) error {
	if v, ok, err := luaInt(L, "clock_hz"); err != nil {
		return err
	} else if ok {
		cfg.ClockHz = v
	}
	if v, ok, err := luaInt(L, "scale"); err != nil {
		return err
	} else if ok {
		cfg.Scale = v
	}
	if v, ok, err := luaColor(L, "on_color"); err != nil {
		return err
	} else if ok {
		cfg.OnColor = v
	}
	if v, ok, err := luaColor(L, "off_color"); err != nil {
		return err
	} else if ok {
		cfg.OffColor = v
	}
	if v, ok, err := luaFloat(L, "tone_hz"); err != nil {
		return err
	} else if ok {
		cfg.ToneHz = v
	}
	if v, ok, err := luaFloat(L, "volume"); err != nil {
		return err
	} else if ok {
		cfg.Volume = v
	}

	switch v := L.GetGlobal("mute").(type) {
	case *lua.LNilType:
	case lua.LBool:
		cfg.Mute = bool(v)
	default:
		return fmt.Errorf("mute: expected boolean, got %s", v.Type())
	}

	switch v := L.GetGlobal("keymap").(type) {
	case *lua.LNilType:
	case *lua.LTable:
		keys, err := luaKeyMap(v)
		if err != nil {
			return err
		}
		cfg.KeyMap = keys
	default:
		return fmt.Errorf("keymap: expected table, got %s", v.Type())
	}
	return nil
}

func luaFloat(L *lua.LState, name string) (float64, bool, error) {
	switch v := L.GetGlobal(name).(type) {
	case *lua.LNilType:
		return 0, false, nil
	case lua.LNumber:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("%s: expected number, got %s", name, v.Type())
	}
}

func luaInt(L *lua.LState, name string) (int, bool, error) {
	f, ok, err := luaFloat(L, name)
	if err != nil || !ok {
		return 0, ok, err
	}
	if f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%s: expected integer, got %v", name, f)
	}
	return int(f), true, nil
}

func luaColor(L *lua.LState, name string) (uint32, bool, error) {
	switch v := L.GetGlobal(name).(type) {
	case *lua.LNilType:
		return 0, false, nil
	case lua.LNumber:
		if v < 0 || v > 0xFFFFFF {
			return 0, false, fmt.Errorf("%s: color 0x%X out of range", name, int64(v))
		}
		return uint32(v), true, nil
	case lua.LString:
		rgb, err := parseRGB(string(v))
		if err != nil {
			return 0, false, fmt.Errorf("%s: %w", name, err)
		}
		return rgb, true, nil
	default:
		return 0, false, fmt.Errorf("%s: expected color string or number, got %s", name, v.Type())
	}
}

func luaKeyMap(tbl *lua.LTable) (map[string]byte, error) {
	keys := make(map[string]byte)
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		name := strings.ToUpper(k.String())
		if _, known := physicalKeyNames[name]; !known {
			err = fmt.Errorf("keymap: unknown key %q", k.String())
			return
		}
		n, ok := v.(lua.LNumber)
		if !ok || n < 0 || int(n) >= CHIP8_KEY_COUNT || float64(n) != math.Trunc(float64(n)) {
			err = fmt.Errorf("keymap: %s must map to a keypad key 0-15, got %s", name, v.String())
			return
		}
		keys[name] = byte(n)
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// physicalKeyNames lists the key names a key map may bind.
var physicalKeyNames = func() map[string]struct{} {
	names := make(map[string]struct{}, 36)
	for c := '0'; c <= '9'; c++ {
		names[string(c)] = struct{}{}
	}
	for c := 'A'; c <= 'Z'; c++ {
		names[string(c)] = struct{}{}
	}
	return names
}()
