// video_vram_test.go - Video memory drawing tests

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

import "testing"

func TestVideoMemory_DrawXORAndCollision(t *testing.T) {
	var v VideoMemory
	if v.Draw(0, 0, []byte{0xC0}) {
		t.Fatal("draw on blank screen reported collision")
	}
	if !v.Pixel(0, 0) || !v.Pixel(1, 0) || v.Pixel(2, 0) {
		t.Fatalf("unexpected row 0: %016X", v.Row(0))
	}

	// Overlap only on column 1.
	if !v.Draw(1, 0, []byte{0x80}) {
		t.Fatal("expected collision")
	}
	if !v.Pixel(0, 0) || v.Pixel(1, 0) {
		t.Fatalf("unexpected row 0 after XOR: %016X", v.Row(0))
	}

	// Adding a pixel without turning one off is not a collision.
	if v.Draw(5, 0, []byte{0x80}) {
		t.Fatal("lighting a new pixel reported collision")
	}
}

func TestVideoMemory_ClipsRightEdge(t *testing.T) {
	var v VideoMemory
	v.Draw(60, 0, []byte{0xFF})
	if v.Row(0) != 0x0F {
		t.Fatalf("expected columns 60-63 only, got %016X", v.Row(0))
	}
	for x := 0; x < 4; x++ {
		if v.Pixel(x, 0) {
			t.Fatalf("sprite wrapped into column %d", x)
		}
	}
}

func TestVideoMemory_ClipsBottomEdge(t *testing.T) {
	var v VideoMemory
	v.Draw(0, 30, []byte{0x80, 0x80, 0x80, 0x80})
	if !v.Pixel(0, 30) || !v.Pixel(0, 31) {
		t.Fatal("visible rows not drawn")
	}
	if v.Pixel(0, 0) || v.Pixel(0, 1) {
		t.Fatal("sprite body wrapped to the top")
	}
}

func TestVideoMemory_OriginWraps(t *testing.T) {
	var v VideoMemory
	v.Draw(64+3, 32+2, []byte{0x80})
	if !v.Pixel(3, 2) {
		t.Fatalf("expected origin (3,2), row 2 = %016X", v.Row(2))
	}
	v.Draw(255, 255, []byte{0x80})
	if !v.Pixel(63, 31) {
		t.Fatal("expected origin (63,31)")
	}
}

func TestVideoMemory_DirtyTracking(t *testing.T) {
	var v VideoMemory
	if v.dirty {
		t.Fatal("fresh video memory is dirty")
	}
	v.Draw(0, 0, []byte{0x80})
	if !v.TakeDirty() {
		t.Fatal("draw did not set dirty")
	}
	if v.TakeDirty() {
		t.Fatal("TakeDirty did not reset the flag")
	}
	v.Clear()
	if !v.dirty {
		t.Fatal("clear did not set dirty")
	}
	if v.Rows() != ([CHIP8_SCREEN_HEIGHT]uint64{}) {
		t.Fatal("clear left pixels set")
	}
}

func TestVideoMemory_OffScreenReads(t *testing.T) {
	var v VideoMemory
	v.Draw(0, 0, []byte{0xFF})
	if v.Row(-1) != 0 || v.Row(CHIP8_SCREEN_HEIGHT) != 0 {
		t.Fatal("off screen rows must read as zero")
	}
	if v.Pixel(-1, 0) || v.Pixel(CHIP8_SCREEN_WIDTH, 0) {
		t.Fatal("off screen pixels must read as unset")
	}
}
