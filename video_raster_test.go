// video_raster_test.go - RGBA rasterization and screenshot encoding tests

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
	"image/color"
	"image/png"
	"testing"
)

var (
	testOn  = color.RGBA{R: 0x33, G: 0xFF, B: 0x66, A: 0xFF}
	testOff = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
)

func pixelAt(buf []byte, scale, x, y int) color.RGBA {
	o := (y*CHIP8_SCREEN_WIDTH*scale + x) * 4
	return color.RGBA{R: buf[o], G: buf[o+1], B: buf[o+2], A: buf[o+3]}
}

func TestRasterizeRGBA_ScalesPixels(t *testing.T) {
	var rows [CHIP8_SCREEN_HEIGHT]uint64
	rows[0] = 1 << 63 // (0,0)
	rows[31] = 1      // (63,31)
	const scale = 3

	buf := make([]byte, frameBufferSize(scale))
	rasterizeRGBA(buf, rows, scale, testOn, testOff)

	for y := 0; y < scale; y++ {
		for x := 0; x < scale; x++ {
			if got := pixelAt(buf, scale, x, y); got != testOn {
				t.Fatalf("pixel (%d,%d) = %+v, want on", x, y, got)
			}
		}
	}
	if got := pixelAt(buf, scale, scale, 0); got != testOff {
		t.Fatalf("pixel (%d,0) = %+v, want off", scale, got)
	}
	if got := pixelAt(buf, scale, 0, scale); got != testOff {
		t.Fatalf("pixel (0,%d) = %+v, want off", scale, got)
	}
	last := CHIP8_SCREEN_WIDTH*scale - 1
	if got := pixelAt(buf, scale, last, CHIP8_SCREEN_HEIGHT*scale-1); got != testOn {
		t.Fatalf("bottom-right pixel = %+v, want on", got)
	}
}

func TestEncodeFramePNG(t *testing.T) {
	var rows [CHIP8_SCREEN_HEIGHT]uint64
	rows[2] = 1 << 60 // (3,2)

	data, err := encodeFramePNG(rows, 2, testOn, testOff)
	if err != nil {
		t.Fatalf("encodeFramePNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := color.RGBAModel.Convert(img.At(7, 5)).(color.RGBA); got != testOn {
		t.Fatalf("scaled pixel = %+v, want on", got)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got != testOff {
		t.Fatalf("background pixel = %+v, want off", got)
	}
}
