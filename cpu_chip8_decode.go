// cpu_chip8_decode.go - Instruction word decoding for the CHIP-8 core

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

import "fmt"

// Opcode is the closed set of instructions understood by the core.
type Opcode uint8

const (
	OP_INVALID Opcode = iota
	OP_CLS            // 00E0
	OP_RET            // 00EE
	OP_JP             // 1nnn
	OP_CALL           // 2nnn
	OP_SE_IMM         // 3xkk
	OP_SNE_IMM        // 4xkk
	OP_SE_REG         // 5xy0
	OP_LD_IMM         // 6xkk
	OP_ADD_IMM        // 7xkk
	OP_LD_REG         // 8xy0
	OP_OR             // 8xy1
	OP_AND            // 8xy2
	OP_XOR            // 8xy3
	OP_ADD_REG        // 8xy4
	OP_SUB            // 8xy5
	OP_SHR            // 8xy6
	OP_SUBN           // 8xy7
	OP_SHL            // 8xyE
	OP_SNE_REG        // 9xy0
	OP_LD_I           // Annn
	OP_JP_V0          // Bnnn
	OP_RND            // Cxkk
	OP_DRW            // Dxyn
	OP_SKP            // Ex9E
	OP_SKNP           // ExA1
	OP_LD_VX_DT       // Fx07
	OP_LD_VX_K        // Fx0A
	OP_LD_DT_VX       // Fx15
	OP_LD_ST_VX       // Fx18
	OP_ADD_I          // Fx1E
	OP_LD_F           // Fx29
	OP_LD_B           // Fx33
	OP_LD_MEM_VX      // Fx55
	OP_LD_VX_MEM      // Fx65
	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OP_INVALID:   "???",
	OP_CLS:       "CLS",
	OP_RET:       "RET",
	OP_JP:        "JP",
	OP_CALL:      "CALL",
	OP_SE_IMM:    "SE Vx,kk",
	OP_SNE_IMM:   "SNE Vx,kk",
	OP_SE_REG:    "SE Vx,Vy",
	OP_LD_IMM:    "LD Vx,kk",
	OP_ADD_IMM:   "ADD Vx,kk",
	OP_LD_REG:    "LD Vx,Vy",
	OP_OR:        "OR",
	OP_AND:       "AND",
	OP_XOR:       "XOR",
	OP_ADD_REG:   "ADD Vx,Vy",
	OP_SUB:       "SUB",
	OP_SHR:       "SHR",
	OP_SUBN:      "SUBN",
	OP_SHL:       "SHL",
	OP_SNE_REG:   "SNE Vx,Vy",
	OP_LD_I:      "LD I",
	OP_JP_V0:     "JP V0",
	OP_RND:       "RND",
	OP_DRW:       "DRW",
	OP_SKP:       "SKP",
	OP_SKNP:      "SKNP",
	OP_LD_VX_DT:  "LD Vx,DT",
	OP_LD_VX_K:   "LD Vx,K",
	OP_LD_DT_VX:  "LD DT,Vx",
	OP_LD_ST_VX:  "LD ST,Vx",
	OP_ADD_I:     "ADD I,Vx",
	OP_LD_F:      "LD F,Vx",
	OP_LD_B:      "LD B,Vx",
	OP_LD_MEM_VX: "LD [I],Vx",
	OP_LD_VX_MEM: "LD Vx,[I]",
}

func (op Opcode) String() string {
	if op < opcodeCount {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", uint8(op))
}

// Instruction is a decoded instruction word with all operand fields
// extracted, whether or not Op uses them.
type Instruction struct {
	Op   Opcode
	Word uint16
	NNN  uint16 // low 12 bits
	KK   byte   // low byte
	X    byte   // bits 8-11
	Y    byte   // bits 4-7
	N    byte   // low nibble
}

// Decode maps an instruction word onto its opcode. Words outside the
// instruction set decode to OP_INVALID.
func Decode(word uint16) Instruction {
	inst := Instruction{
		Word: word,
		NNN:  word & 0x0FFF,
		KK:   byte(word),
		X:    byte(word>>8) & 0x0F,
		Y:    byte(word>>4) & 0x0F,
		N:    byte(word) & 0x0F,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			inst.Op = OP_CLS
		case 0x00EE:
			inst.Op = OP_RET
		}
	case 0x1:
		inst.Op = OP_JP
	case 0x2:
		inst.Op = OP_CALL
	case 0x3:
		inst.Op = OP_SE_IMM
	case 0x4:
		inst.Op = OP_SNE_IMM
	case 0x5:
		if inst.N == 0 {
			inst.Op = OP_SE_REG
		}
	case 0x6:
		inst.Op = OP_LD_IMM
	case 0x7:
		inst.Op = OP_ADD_IMM
	case 0x8:
		switch inst.N {
		case 0x0:
			inst.Op = OP_LD_REG
		case 0x1:
			inst.Op = OP_OR
		case 0x2:
			inst.Op = OP_AND
		case 0x3:
			inst.Op = OP_XOR
		case 0x4:
			inst.Op = OP_ADD_REG
		case 0x5:
			inst.Op = OP_SUB
		case 0x6:
			inst.Op = OP_SHR
		case 0x7:
			inst.Op = OP_SUBN
		case 0xE:
			inst.Op = OP_SHL
		}
	case 0x9:
		if inst.N == 0 {
			inst.Op = OP_SNE_REG
		}
	case 0xA:
		inst.Op = OP_LD_I
	case 0xB:
		inst.Op = OP_JP_V0
	case 0xC:
		inst.Op = OP_RND
	case 0xD:
		inst.Op = OP_DRW
	case 0xE:
		switch inst.KK {
		case 0x9E:
			inst.Op = OP_SKP
		case 0xA1:
			inst.Op = OP_SKNP
		}
	case 0xF:
		switch inst.KK {
		case 0x07:
			inst.Op = OP_LD_VX_DT
		case 0x0A:
			inst.Op = OP_LD_VX_K
		case 0x15:
			inst.Op = OP_LD_DT_VX
		case 0x18:
			inst.Op = OP_LD_ST_VX
		case 0x1E:
			inst.Op = OP_ADD_I
		case 0x29:
			inst.Op = OP_LD_F
		case 0x33:
			inst.Op = OP_LD_B
		case 0x55:
			inst.Op = OP_LD_MEM_VX
		case 0x65:
			inst.Op = OP_LD_VX_MEM
		}
	}
	return inst
}
