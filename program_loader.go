// program_loader.go - Program image file loading

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
	"os"
)

// ReadProgramFile reads and validates a raw program image. There is no
// header; the file is the instruction stream.
func ReadProgramFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ProgramError{Path: path, Details: "cannot stat", Err: err}
	}
	if info.IsDir() {
		return nil, &ProgramError{Path: path, Details: "is a directory", Err: os.ErrInvalid}
	}
	if info.Size() > CHIP8_MAX_PROGRAM {
		return nil, &ProgramError{
			Path:    path,
			Details: fmt.Sprintf("%d bytes exceeds %d byte program space", info.Size(), CHIP8_MAX_PROGRAM),
			Err:     ErrProgramTooLarge,
		}
	}

	program, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProgramError{Path: path, Details: "cannot read", Err: err}
	}
	if len(program) == 0 {
		return nil, &ProgramError{Path: path, Details: "no instructions", Err: ErrProgramEmpty}
	}
	return program, nil
}

// LoadProgramFile reads path and copies it into cpu memory.
func (cpu *Chip8CPU) LoadProgramFile(path string) error {
	program, err := ReadProgramFile(path)
	if err != nil {
		return err
	}
	if err := cpu.LoadProgram(program); err != nil {
		if pe, ok := err.(*ProgramError); ok {
			pe.Path = path
		}
		return err
	}
	return nil
}
