// video_raster.go - Video memory to RGBA conversion shared by presenters

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
	"image"
	"image/color"
	"image/png"
)

// rasterizeRGBA expands the bitmap into dst as scale x scale RGBA blocks.
// dst must hold 64*scale * 32*scale * 4 bytes.
func rasterizeRGBA(dst []byte, rows [CHIP8_SCREEN_HEIGHT]uint64, scale int, on, off color.RGBA) {
	stride := CHIP8_SCREEN_WIDTH * scale * 4
	for y, bits := range rows {
		line := dst[y*scale*stride : (y*scale+1)*stride]
		for x := 0; x < CHIP8_SCREEN_WIDTH; x++ {
			c := off
			if bits&(1<<(63-uint(x))) != 0 {
				c = on
			}
			for sx := 0; sx < scale; sx++ {
				o := (x*scale + sx) * 4
				line[o] = c.R
				line[o+1] = c.G
				line[o+2] = c.B
				line[o+3] = c.A
			}
		}
		// Duplicate the first line of the block for the remaining scanlines.
		for sy := 1; sy < scale; sy++ {
			start := (y*scale + sy) * stride
			copy(dst[start:start+stride], line)
		}
	}
}

func frameBufferSize(scale int) int {
	return CHIP8_SCREEN_WIDTH * scale * CHIP8_SCREEN_HEIGHT * scale * 4
}

// encodeFramePNG renders the bitmap at the given scale as a PNG image.
func encodeFramePNG(rows [CHIP8_SCREEN_HEIGHT]uint64, scale int, on, off color.RGBA) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, CHIP8_SCREEN_WIDTH*scale, CHIP8_SCREEN_HEIGHT*scale))
	rasterizeRGBA(img.Pix, rows, scale, on, off)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
