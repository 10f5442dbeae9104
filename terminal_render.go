// terminal_render.go - Half-block text rendering of video memory

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
	"strings"
)

const (
	TERM_CURSOR_HOME = "\x1b[H"
	TERM_CLEAR       = "\x1b[2J"
	TERM_HIDE_CURSOR = "\x1b[?25l"
	TERM_SHOW_CURSOR = "\x1b[?25h"

	// Two scanlines per text row.
	TERM_ROWS = CHIP8_SCREEN_HEIGHT / 2
)

var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// renderHalfBlocks draws the bitmap as TERM_ROWS lines of 64 cells. Lines
// end in CRLF because raw mode disables output post-processing.
func renderHalfBlocks(video *VideoMemory) string {
	var sb strings.Builder
	sb.Grow(TERM_ROWS * (CHIP8_SCREEN_WIDTH*3 + 2))
	for r := 0; r < CHIP8_SCREEN_HEIGHT; r += 2 {
		for x := 0; x < CHIP8_SCREEN_WIDTH; x++ {
			idx := 0
			if video.Pixel(x, r) {
				idx |= 2
			}
			if video.Pixel(x, r+1) {
				idx |= 1
			}
			sb.WriteString(halfBlocks[idx])
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// terminalStatusLine is printed under the picture.
func terminalStatusLine(s runtimeStatusSnapshot) string {
	tone := "-"
	if s.tone {
		tone = "ON"
	}
	line := fmt.Sprintf("%-12s PC %03X  FRAME %-8d TONE %-2s  [Space] pause [Esc] quit", s.stateLabel(), s.pc, s.frames, tone)
	return "\x1b[K" + line + "\r\n"
}
