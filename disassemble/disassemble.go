// Package disassemble renders a 6502 byte stream as mnemonic/operand
// text without executing it. Grounded on the pack's own disassembler
// for this chip, but driven off the shared cpu.Opcode table instead of
// a parallel hand-written switch, so every opcode the core implements
// disassembles correctly by construction.
package disassemble

import (
	"fmt"

	"github.com/Error916/6502Emulator/cpu"
)

// Reader is the minimal memory surface a disassembler needs: byte
// access only, no writes, no CPU state. *cpu.CPU satisfies it via
// MemRead.
type Reader interface {
	MemRead(addr uint16) uint8
}

// Step disassembles the single instruction at pc, returning its text
// form and how many bytes the caller should advance pc by (the
// opcode's Len, or 1 for an unrecognized byte). It never follows
// jumps: a JMP target is just the next straight-line bytes, exactly as
// the byte stream lays them out.
func Step(pc uint16, r Reader) (string, int) {
	op := r.MemRead(pc)
	entry := cpu.Opcodes()[op]
	if entry == nil {
		return fmt.Sprintf("%04X  %02X        .byte $%02X", pc, op, op), 1
	}

	switch entry.Mode {
	case cpu.Immediate:
		a1 := r.MemRead(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s #$%02X", pc, op, a1, entry.Mnemonic, a1), int(entry.Len)

	case cpu.ZeroPage:
		a1 := r.MemRead(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s $%02X", pc, op, a1, entry.Mnemonic, a1), int(entry.Len)

	case cpu.ZeroPageX:
		a1 := r.MemRead(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s $%02X,X", pc, op, a1, entry.Mnemonic, a1), int(entry.Len)

	case cpu.ZeroPageY:
		a1 := r.MemRead(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s $%02X,Y", pc, op, a1, entry.Mnemonic, a1), int(entry.Len)

	case cpu.IndirectX:
		a1 := r.MemRead(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s ($%02X,X)", pc, op, a1, entry.Mnemonic, a1), int(entry.Len)

	case cpu.IndirectY:
		a1 := r.MemRead(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s ($%02X),Y", pc, op, a1, entry.Mnemonic, a1), int(entry.Len)

	case cpu.Absolute:
		a1, a2 := r.MemRead(pc+1), r.MemRead(pc+2)
		mnemonic := entry.Mnemonic
		if mnemonic == "JMP" {
			return fmt.Sprintf("%04X  %02X %02X %02X  JMP $%02X%02X", pc, op, a1, a2, a2, a1), int(entry.Len)
		}
		return fmt.Sprintf("%04X  %02X %02X %02X  %s $%02X%02X", pc, op, a1, a2, mnemonic, a2, a1), int(entry.Len)

	case cpu.AbsoluteX:
		a1, a2 := r.MemRead(pc+1), r.MemRead(pc+2)
		return fmt.Sprintf("%04X  %02X %02X %02X  %s $%02X%02X,X", pc, op, a1, a2, entry.Mnemonic, a2, a1), int(entry.Len)

	case cpu.AbsoluteY:
		a1, a2 := r.MemRead(pc+1), r.MemRead(pc+2)
		return fmt.Sprintf("%04X  %02X %02X %02X  %s $%02X%02X,Y", pc, op, a1, a2, entry.Mnemonic, a2, a1), int(entry.Len)

	case cpu.NoneAddressing:
		if entry.Mnemonic == "JMP" && op == 0x6C {
			// Indirect JMP. The table carries both JMP forms and JSR as
			// NoneAddressing because Resolve never handles them (the
			// handlers compute the target themselves), but disassembly
			// still needs the operand word.
			a1, a2 := r.MemRead(pc+1), r.MemRead(pc+2)
			return fmt.Sprintf("%04X  %02X %02X %02X  JMP ($%02X%02X)", pc, op, a1, a2, a2, a1), int(entry.Len)
		}
		if entry.Mnemonic == "JSR" || entry.Mnemonic == "JMP" {
			a1, a2 := r.MemRead(pc+1), r.MemRead(pc+2)
			return fmt.Sprintf("%04X  %02X %02X %02X  %s $%02X%02X", pc, op, a1, a2, entry.Mnemonic, a2, a1), int(entry.Len)
		}
		if entry.Len == 2 {
			// Branches: signed relative offset, shown resolved to an
			// absolute target for readability.
			off := int8(r.MemRead(pc + 1))
			target := uint16(int32(pc) + 2 + int32(off))
			return fmt.Sprintf("%04X  %02X %02X     %s $%04X", pc, op, uint8(off), entry.Mnemonic, target), int(entry.Len)
		}
		return fmt.Sprintf("%04X  %02X        %s", pc, op, entry.Mnemonic), int(entry.Len)
	}
	return fmt.Sprintf("%04X  %02X        %s", pc, op, entry.Mnemonic), int(entry.Len)
}
