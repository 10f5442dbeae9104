//go:build headless

// video_backend_headless.go - Frame counting presenter for headless builds

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
	"context"
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
)

type HeadlessPresenter struct {
	keypad      *Keypad
	frameCount  uint64
	redrawCount uint64
	lastFrame   [CHIP8_SCREEN_HEIGHT]uint64
}

// NewEbitenPresenter stands in for the window backend when built headless.
func NewEbitenPresenter(cfg MachineConfig, keypad *Keypad) (*HeadlessPresenter, error) {
	return &HeadlessPresenter{keypad: keypad}, nil
}

// Run drives frames until interrupted or the machine faults.
func (h *HeadlessPresenter) Run(driver *FrameDriver) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := driver.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (h *HeadlessPresenter) Present(video *VideoMemory) error {
	atomic.AddUint64(&h.frameCount, 1)
	if video.TakeDirty() {
		atomic.AddUint64(&h.redrawCount, 1)
		h.lastFrame = video.Rows()
	}
	return nil
}

// Poll leaves the keypad untouched; headless runs have no keyboard.
func (h *HeadlessPresenter) Poll() {}

func (h *HeadlessPresenter) GetFrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}

func (h *HeadlessPresenter) GetRedrawCount() uint64 {
	return atomic.LoadUint64(&h.redrawCount)
}

func (h *HeadlessPresenter) LastFrame() [CHIP8_SCREEN_HEIGHT]uint64 {
	return h.lastFrame
}
