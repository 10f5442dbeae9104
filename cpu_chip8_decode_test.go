// cpu_chip8_decode_test.go - Instruction decoder tests

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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode_OpcodeTable(t *testing.T) {
	tests := []struct {
		word uint16
		want Opcode
	}{
		{0x00E0, OP_CLS},
		{0x00EE, OP_RET},
		{0x1234, OP_JP},
		{0x2ABC, OP_CALL},
		{0x3142, OP_SE_IMM},
		{0x4142, OP_SNE_IMM},
		{0x5120, OP_SE_REG},
		{0x61FF, OP_LD_IMM},
		{0x7101, OP_ADD_IMM},
		{0x8120, OP_LD_REG},
		{0x8121, OP_OR},
		{0x8122, OP_AND},
		{0x8123, OP_XOR},
		{0x8124, OP_ADD_REG},
		{0x8125, OP_SUB},
		{0x8126, OP_SHR},
		{0x8127, OP_SUBN},
		{0x812E, OP_SHL},
		{0x9120, OP_SNE_REG},
		{0xA300, OP_LD_I},
		{0xB300, OP_JP_V0},
		{0xC1FF, OP_RND},
		{0xD125, OP_DRW},
		{0xD120, OP_DRW},
		{0xE19E, OP_SKP},
		{0xE1A1, OP_SKNP},
		{0xF107, OP_LD_VX_DT},
		{0xF10A, OP_LD_VX_K},
		{0xF115, OP_LD_DT_VX},
		{0xF118, OP_LD_ST_VX},
		{0xF11E, OP_ADD_I},
		{0xF129, OP_LD_F},
		{0xF133, OP_LD_B},
		{0xF155, OP_LD_MEM_VX},
		{0xF165, OP_LD_VX_MEM},
	}

	for _, tt := range tests {
		if got := Decode(tt.word).Op; got != tt.want {
			t.Fatalf("Decode(%04X) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDecode_InvalidWords(t *testing.T) {
	for _, word := range []uint16{
		0x0000, 0x0123, 0x00E1, 0x00FF, // SYS and unknown 0-group words
		0x5121, 0x512F, 0x9121, // register compares need a zero low nibble
		0x8128, 0x8129, 0x812D, 0x812F,
		0xE100, 0xE19F,
		0xF100, 0xF1FF, 0xF130,
	} {
		if inst := Decode(word); inst.Op != OP_INVALID {
			t.Fatalf("Decode(%04X) = %v, want invalid", word, inst.Op)
		}
	}
}

func TestDecode_OperandFields(t *testing.T) {
	got := Decode(0xD7A3)
	want := Instruction{Op: OP_DRW, Word: 0xD7A3, NNN: 0x7A3, KK: 0xA3, X: 0x7, Y: 0xA, N: 0x3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields (-want +got):\n%s", diff)
	}
}

func TestOpcode_String(t *testing.T) {
	if OP_DRW.String() != "DRW" {
		t.Fatalf("expected DRW, got %q", OP_DRW.String())
	}
	if Opcode(200).String() != "Opcode(200)" {
		t.Fatalf("unexpected out of range name %q", Opcode(200).String())
	}
}
