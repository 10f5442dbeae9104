// cpu_chip8.go - CHIP-8 machine state and instruction engine

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

import "sync/atomic"

/*
Compatibility profile

The core implements exactly one quirk profile:

  - 8xy1/8xy2/8xy3 reset VF to 0 after the logic operation
  - 8xy6/8xyE shift Vy into Vx; VF receives the bit shifted out of Vy
  - Fx55/Fx65 leave I advanced by x+1
  - Dxyn wraps the sprite origin but clips the sprite body at the right and
    bottom edges
  - Bnnn jumps to nnn+V0

Flag producing opcodes write Vx first and VF last, so when x is F the
register ends up holding the flag.
*/

// ExecStateKind tags the execution state machine.
type ExecStateKind uint8

const (
	EXEC_RUNNING ExecStateKind = iota
	EXEC_WAITING_FOR_KEY
	EXEC_WAITING_FOR_RELEASE
)

func (k ExecStateKind) String() string {
	switch k {
	case EXEC_RUNNING:
		return "running"
	case EXEC_WAITING_FOR_KEY:
		return "waiting-for-key"
	case EXEC_WAITING_FOR_RELEASE:
		return "waiting-for-release"
	}
	return "unknown"
}

// ExecState is the blocking LD Vx,K instruction expressed as data. Register
// is meaningful in both waiting states, Key only while waiting for release.
type ExecState struct {
	Kind     ExecStateKind
	Register byte
	Key      byte
}

type Chip8CPU struct {
	// Registers
	V  [CHIP8_REGISTER_COUNT]byte
	I  uint16
	PC uint16
	SP byte
	DT byte
	ST byte

	Stack  [CHIP8_STACK_DEPTH]uint16
	Memory [CHIP8_MEMORY_SIZE]byte

	State ExecState

	// Cycles counts every Cycle call that did work, including key polls.
	Cycles uint64

	video  *VideoMemory
	input  KeypadInput
	random RandomSource
	audio  AudioSink

	toneOn atomic.Bool
	fault  error
}

// NewChip8CPU returns a machine with the font loaded and PC at the program
// start. A nil random source or audio sink selects the defaults.
func NewChip8CPU(video *VideoMemory, input KeypadInput, random RandomSource, audio AudioSink) *Chip8CPU {
	if video == nil {
		video = &VideoMemory{}
	}
	if input == nil {
		input = &Keypad{}
	}
	if random == nil {
		random = mathRandSource{}
	}
	if audio == nil {
		audio = silentAudio{}
	}
	cpu := &Chip8CPU{
		PC:     CHIP8_PROGRAM_START,
		video:  video,
		input:  input,
		random: random,
		audio:  audio,
	}
	copy(cpu.Memory[CHIP8_FONT_START:], chip8Font[:])
	return cpu
}

// LoadProgram copies a program image to CHIP8_PROGRAM_START.
func (cpu *Chip8CPU) LoadProgram(program []byte) error {
	if len(program) == 0 {
		return &ProgramError{Details: "no instructions", Err: ErrProgramEmpty}
	}
	if len(program) > CHIP8_MAX_PROGRAM {
		return &ProgramError{
			Details: "image exceeds program space",
			Err:     ErrProgramTooLarge,
		}
	}
	copy(cpu.Memory[CHIP8_PROGRAM_START:], program)
	return nil
}

func (cpu *Chip8CPU) Video() *VideoMemory {
	return cpu.video
}

// Fault returns the machine error that halted execution, if any.
func (cpu *Chip8CPU) Fault() error {
	return cpu.fault
}

// ToneActive reports the current audio intent. Safe from any goroutine.
func (cpu *Chip8CPU) ToneActive() bool {
	return cpu.toneOn.Load()
}

// Fetch reads the big-endian instruction word at PC without advancing it.
func (cpu *Chip8CPU) Fetch() (uint16, error) {
	if int(cpu.PC)+1 > CHIP8_MAX_ADDRESS {
		return 0, &MachineError{Operation: "fetch", PC: cpu.PC, Addr: cpu.PC, Err: ErrAddressOutOfRange}
	}
	return uint16(cpu.Memory[cpu.PC])<<8 | uint16(cpu.Memory[cpu.PC+1]), nil
}

// Cycle advances the execution state machine by one step: one instruction
// while running, one key poll while waiting. A machine fault is latched and
// returned from every later call.
func (cpu *Chip8CPU) Cycle() error {
	if cpu.fault != nil {
		return cpu.fault
	}
	cpu.Cycles++

	switch cpu.State.Kind {
	case EXEC_RUNNING:
		word, err := cpu.Fetch()
		if err != nil {
			cpu.fault = err
			return err
		}
		if err := cpu.DecodeExecute(word); err != nil {
			cpu.fault = err
			return err
		}
	case EXEC_WAITING_FOR_KEY:
		if key, ok := cpu.input.AnyKeyDown(); ok {
			cpu.V[cpu.State.Register] = key
			cpu.State = ExecState{Kind: EXEC_WAITING_FOR_RELEASE, Register: cpu.State.Register, Key: key}
		}
	case EXEC_WAITING_FOR_RELEASE:
		if !cpu.input.IsKeyDown(cpu.State.Key) {
			cpu.V[cpu.State.Register] = cpu.State.Key
			cpu.State = ExecState{Kind: EXEC_RUNNING}
		}
	}
	return nil
}

// TickTimers runs one 60 Hz timer period. ST counts down on every tick
// regardless of the tone; start and stop intents are issued on edges.
func (cpu *Chip8CPU) TickTimers() {
	if cpu.DT > 0 {
		cpu.DT--
	}

	if cpu.ST > 0 {
		if !cpu.toneOn.Load() {
			cpu.toneOn.Store(true)
			cpu.audio.StartTone()
		}
		cpu.ST--
	} else if cpu.toneOn.Load() {
		cpu.toneOn.Store(false)
		cpu.audio.StopTone()
	}
}

// DecodeExecute advances PC past word and applies it.
func (cpu *Chip8CPU) DecodeExecute(word uint16) error {
	pc := cpu.PC
	cpu.PC += CHIP8_INSTRUCTION_SIZE
	return cpu.execute(pc, Decode(word))
}

func (cpu *Chip8CPU) skipIf(cond bool) {
	if cond {
		cpu.PC += CHIP8_INSTRUCTION_SIZE
	}
}

func btou8(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// checkRange fails when [start, start+n) is not inside memory.
func (cpu *Chip8CPU) checkRange(op Opcode, pc uint16, start uint16, n int) error {
	if int(start)+n > CHIP8_MEMORY_SIZE {
		return &MachineError{Operation: op.String(), PC: pc, Addr: start, Err: ErrAddressOutOfRange}
	}
	return nil
}

func (cpu *Chip8CPU) execute(pc uint16, inst Instruction) error {
	vx := cpu.V[inst.X]
	vy := cpu.V[inst.Y]

	switch inst.Op {
	case OP_CLS:
		cpu.video.Clear()

	case OP_RET:
		if cpu.SP == 0 {
			return &MachineError{Operation: inst.Op.String(), PC: pc, Addr: uint16(cpu.SP), Err: ErrStackUnderflow}
		}
		cpu.SP--
		cpu.PC = cpu.Stack[cpu.SP]

	case OP_JP:
		cpu.PC = inst.NNN

	case OP_CALL:
		if int(cpu.SP) >= CHIP8_STACK_DEPTH {
			return &MachineError{Operation: inst.Op.String(), PC: pc, Addr: uint16(cpu.SP), Err: ErrStackOverflow}
		}
		cpu.Stack[cpu.SP] = cpu.PC
		cpu.SP++
		cpu.PC = inst.NNN

	case OP_SE_IMM:
		cpu.skipIf(vx == inst.KK)
	case OP_SNE_IMM:
		cpu.skipIf(vx != inst.KK)
	case OP_SE_REG:
		cpu.skipIf(vx == vy)
	case OP_SNE_REG:
		cpu.skipIf(vx != vy)

	case OP_LD_IMM:
		cpu.V[inst.X] = inst.KK
	case OP_ADD_IMM:
		cpu.V[inst.X] = vx + inst.KK

	case OP_LD_REG:
		cpu.V[inst.X] = vy
	case OP_OR:
		cpu.V[inst.X] = vx | vy
		cpu.V[CHIP8_FLAG_REGISTER] = 0
	case OP_AND:
		cpu.V[inst.X] = vx & vy
		cpu.V[CHIP8_FLAG_REGISTER] = 0
	case OP_XOR:
		cpu.V[inst.X] = vx ^ vy
		cpu.V[CHIP8_FLAG_REGISTER] = 0
	case OP_ADD_REG:
		sum := uint16(vx) + uint16(vy)
		cpu.V[inst.X] = byte(sum)
		cpu.V[CHIP8_FLAG_REGISTER] = btou8(sum > 0xFF)
	case OP_SUB:
		cpu.V[inst.X] = vx - vy
		cpu.V[CHIP8_FLAG_REGISTER] = btou8(vx >= vy)
	case OP_SHR:
		cpu.V[inst.X] = vy >> 1
		cpu.V[CHIP8_FLAG_REGISTER] = vy & 1
	case OP_SUBN:
		cpu.V[inst.X] = vy - vx
		cpu.V[CHIP8_FLAG_REGISTER] = btou8(vy >= vx)
	case OP_SHL:
		cpu.V[inst.X] = vy << 1
		cpu.V[CHIP8_FLAG_REGISTER] = vy >> 7

	case OP_LD_I:
		cpu.I = inst.NNN
	case OP_JP_V0:
		cpu.PC = inst.NNN + uint16(cpu.V[0])
	case OP_RND:
		cpu.V[inst.X] = cpu.random.Byte() & inst.KK

	case OP_DRW:
		if err := cpu.checkRange(inst.Op, pc, cpu.I, int(inst.N)); err != nil {
			return err
		}
		sprite := cpu.Memory[cpu.I : int(cpu.I)+int(inst.N)]
		cpu.V[CHIP8_FLAG_REGISTER] = btou8(cpu.video.Draw(vx, vy, sprite))

	case OP_SKP:
		cpu.skipIf(cpu.input.IsKeyDown(vx & 0x0F))
	case OP_SKNP:
		cpu.skipIf(!cpu.input.IsKeyDown(vx & 0x0F))

	case OP_LD_VX_DT:
		cpu.V[inst.X] = cpu.DT
	case OP_LD_VX_K:
		cpu.State = ExecState{Kind: EXEC_WAITING_FOR_KEY, Register: inst.X}
	case OP_LD_DT_VX:
		cpu.DT = vx
	case OP_LD_ST_VX:
		cpu.ST = vx
	case OP_ADD_I:
		cpu.I += uint16(vx)
	case OP_LD_F:
		cpu.I = CHIP8_FONT_START + uint16(vx)*CHIP8_GLYPH_SIZE

	case OP_LD_B:
		if err := cpu.checkRange(inst.Op, pc, cpu.I, 3); err != nil {
			return err
		}
		cpu.Memory[cpu.I] = vx / 100
		cpu.Memory[cpu.I+1] = (vx / 10) % 10
		cpu.Memory[cpu.I+2] = vx % 10

	case OP_LD_MEM_VX:
		n := int(inst.X) + 1
		if err := cpu.checkRange(inst.Op, pc, cpu.I, n); err != nil {
			return err
		}
		copy(cpu.Memory[cpu.I:int(cpu.I)+n], cpu.V[:n])
		cpu.I += uint16(n)

	case OP_LD_VX_MEM:
		n := int(inst.X) + 1
		if err := cpu.checkRange(inst.Op, pc, cpu.I, n); err != nil {
			return err
		}
		copy(cpu.V[:n], cpu.Memory[cpu.I:int(cpu.I)+n])
		cpu.I += uint16(n)

	default:
		logf("chip8", "Invalid instruction 0x%04X at PC=%03X", inst.Word, pc)
	}
	return nil
}
