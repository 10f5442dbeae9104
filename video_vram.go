// video_vram.go - 64x32 monochrome video memory with XOR sprite drawing

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

// VideoMemory stores one uint64 per scanline. Bit 63 is column 0.
// Bits are only ever changed by Clear or by XOR in Draw.
type VideoMemory struct {
	rows  [CHIP8_SCREEN_HEIGHT]uint64
	dirty bool
}

// Clear zeroes every row and marks the display dirty.
func (v *VideoMemory) Clear() {
	for i := range v.rows {
		v.rows[i] = 0
	}
	v.dirty = true
}

// Draw XORs sprite onto the bitmap at (x, y) and reports whether any set
// pixel was flipped off. The origin wraps around the screen; the sprite body
// is clipped at the right and bottom edges.
func (v *VideoMemory) Draw(x, y byte, sprite []byte) bool {
	x %= CHIP8_SCREEN_WIDTH
	y %= CHIP8_SCREEN_HEIGHT

	collision := false
	for r, b := range sprite {
		row := int(y) + r
		if row >= CHIP8_SCREEN_HEIGHT {
			break
		}
		// Shifting past column 63 drops the bits on the floor.
		pattern := (uint64(b) << 56) >> x
		if v.rows[row]&pattern != 0 {
			collision = true
		}
		v.rows[row] ^= pattern
	}
	v.dirty = true
	return collision
}

// Row returns scanline r, or 0 when r is off screen.
func (v *VideoMemory) Row(r int) uint64 {
	if r < 0 || r >= CHIP8_SCREEN_HEIGHT {
		return 0
	}
	return v.rows[r]
}

// Rows returns a copy of the whole bitmap.
func (v *VideoMemory) Rows() [CHIP8_SCREEN_HEIGHT]uint64 {
	return v.rows
}

func (v *VideoMemory) Pixel(x, y int) bool {
	if x < 0 || x >= CHIP8_SCREEN_WIDTH {
		return false
	}
	return v.Row(y)&(1<<(63-uint(x))) != 0
}

// TakeDirty reports the dirty flag and clears it. Presenters call this once
// per frame to skip redundant rasterization.
func (v *VideoMemory) TakeDirty() bool {
	d := v.dirty
	v.dirty = false
	return d
}
