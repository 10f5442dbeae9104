// frame_driver.go - Frame paced execution of the CHIP-8 core

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
	"time"
)

// Presenter receives the video memory once per frame. Implementations
// should call TakeDirty and skip rasterization when nothing changed.
type Presenter interface {
	Present(video *VideoMemory) error
}

// InputSource refreshes the keypad at the end of a frame.
type InputSource interface {
	Poll()
}

// FrameDriver runs cyclesPerFrame cycles, one timer tick, a present and an
// input refresh per frame.
type FrameDriver struct {
	cpu            *Chip8CPU
	presenter      Presenter
	input          InputSource
	cyclesPerFrame int
	framePeriod    time.Duration

	paused bool
	frames uint64
}

// CyclesPerFrame returns floor(clockHz/frameRate), never less than one.
func CyclesPerFrame(clockHz, frameRate int) int {
	if frameRate <= 0 {
		frameRate = CHIP8_FRAME_RATE
	}
	n := clockHz / frameRate
	if n < 1 {
		n = 1
	}
	return n
}

// NewFrameDriver wires the core to its presenter and input collaborators.
// Either collaborator may be nil.
func NewFrameDriver(cpu *Chip8CPU, presenter Presenter, input InputSource, cfg MachineConfig) *FrameDriver {
	return &FrameDriver{
		cpu:            cpu,
		presenter:      presenter,
		input:          input,
		cyclesPerFrame: CyclesPerFrame(cfg.ClockHz, CHIP8_FRAME_RATE),
		framePeriod:    CHIP8_FRAME_PERIOD,
	}
}

func (d *FrameDriver) CPU() *Chip8CPU {
	return d.cpu
}

func (d *FrameDriver) CyclesPerFrame() int {
	return d.cyclesPerFrame
}

func (d *FrameDriver) SetPaused(paused bool) {
	d.paused = paused
}

func (d *FrameDriver) IsPaused() bool {
	return d.paused
}

func (d *FrameDriver) Frames() uint64 {
	return d.frames
}

// RunFrame executes one frame. While paused the machine is frozen but the
// presenter and input still run so the host stays responsive. A fault ends
// the frame early; the status snapshot still records it.
func (d *FrameDriver) RunFrame() error {
	if !d.paused {
		for range d.cyclesPerFrame {
			if err := d.cpu.Cycle(); err != nil {
				runtimeStatus.update(d)
				return err
			}
		}
		d.cpu.TickTimers()
		d.frames++
	}

	if d.presenter != nil {
		if err := d.presenter.Present(d.cpu.Video()); err != nil {
			return err
		}
	}
	if d.input != nil {
		d.input.Poll()
	}
	runtimeStatus.update(d)
	return nil
}

// Run drives frames until ctx is cancelled or the machine faults, sleeping
// out the remainder of each frame period.
func (d *FrameDriver) Run(ctx context.Context) error {
	for {
		start := time.Now()
		if err := d.RunFrame(); err != nil {
			return err
		}
		remaining := d.framePeriod - time.Since(start)
		if remaining <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		timer := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
