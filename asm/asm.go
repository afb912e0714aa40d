// Package asm implements a small line-oriented hand assembler for the
// 6502 core: the textual inverse of package disassemble. Grounded on
// the pack's own hand_asm tool for this chip, which turns a disassembly
// listing's hex columns back into bytes; this version instead resolves
// symbolic mnemonics and operand syntax against cpu.Opcodes() so
// fixture programs can be written as instructions rather than raw hex,
// which is what tests and the CLI driver actually want.
package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Error916/6502Emulator/cpu"
)

// ParseError reports a malformed source line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// Assemble parses "XXXX MNEMONIC OPERAND" lines into a single byte
// slice suitable for cpu.Load. The leading hex address is informational
// only: lines must already be in emission order and output is the
// concatenation of each line's opcode byte plus operand bytes. Operand
// syntax mirrors what package disassemble prints: "#$05" (immediate),
// "$10" / "$10,X" / "$10,Y" (zero page forms), "$0200" / "$0200,X" /
// "$0200,Y" (absolute forms), "($10,X)" / "($10),Y" (indexed indirect),
// "($3000)" (JMP indirect), or no operand at all for implied/accumulator
// instructions. Branches are the exception: their operand is the raw
// signed offset byte ("BNE $02"), not the resolved target address that
// disassemble prints. Blank lines and lines starting with ';' are skipped.
func Assemble(source string) ([]uint8, error) {
	var out []uint8
	for i, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		toks := strings.Fields(line)
		if len(toks) < 2 {
			return nil, ParseError{Line: i + 1, Text: line, Err: fmt.Errorf("expected address and mnemonic")}
		}
		// toks[0] is the address field, kept only for source readability.
		mnemonic := strings.ToUpper(toks[1])
		operand := ""
		if len(toks) > 2 {
			operand = strings.Join(toks[2:], "")
		}

		mode, bytes, err := parseOperand(operand)
		if err != nil {
			return nil, ParseError{Line: i + 1, Text: line, Err: err}
		}
		entry, err := lookup(mnemonic, mode, len(bytes))
		if err != nil {
			return nil, ParseError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, entry.Code)
		out = append(out, bytes...)
	}
	return out, nil
}

// parseOperand classifies operand syntax into a candidate addressing
// mode plus its raw operand bytes, low byte first. An empty operand
// (implied and accumulator instructions) yields NoneAddressing with zero
// bytes. Branches, JMP absolute and JSR take "$" operands like any other
// instruction; lookup then matches them by mnemonic and byte count.
func parseOperand(op string) (cpu.AddressingMode, []uint8, error) {
	switch {
	case op == "":
		return cpu.NoneAddressing, nil, nil

	case strings.HasPrefix(op, "#$"):
		b, err := hexByte(op[2:])
		if err != nil {
			return 0, nil, err
		}
		return cpu.Immediate, []uint8{b}, nil

	case strings.HasPrefix(op, "($") && strings.HasSuffix(op, ",X)"):
		b, err := hexByte(strings.TrimSuffix(op[2:], ",X)"))
		if err != nil {
			return 0, nil, err
		}
		return cpu.IndirectX, []uint8{b}, nil

	case strings.HasPrefix(op, "($") && strings.HasSuffix(op, "),Y"):
		b, err := hexByte(strings.TrimSuffix(op[2:], "),Y"))
		if err != nil {
			return 0, nil, err
		}
		return cpu.IndirectY, []uint8{b}, nil

	case strings.HasPrefix(op, "($") && strings.HasSuffix(op, ")"):
		hi, lo, err := hexWord(strings.TrimSuffix(op[2:], ")"))
		if err != nil {
			return 0, nil, err
		}
		return cpu.NoneAddressing, []uint8{lo, hi}, nil // JMP indirect

	case strings.HasPrefix(op, "$") && strings.HasSuffix(op, ",X"):
		digits := strings.TrimSuffix(op[1:], ",X")
		return wordOrByte(digits, cpu.ZeroPageX, cpu.AbsoluteX)

	case strings.HasPrefix(op, "$") && strings.HasSuffix(op, ",Y"):
		digits := strings.TrimSuffix(op[1:], ",Y")
		return wordOrByte(digits, cpu.ZeroPageY, cpu.AbsoluteY)

	case strings.HasPrefix(op, "$"):
		return wordOrByte(op[1:], cpu.ZeroPage, cpu.Absolute)
	}
	return 0, nil, fmt.Errorf("unrecognized operand %q", op)
}

func wordOrByte(digits string, byteMode, wordMode cpu.AddressingMode) (cpu.AddressingMode, []uint8, error) {
	if len(digits) <= 2 {
		b, err := hexByte(digits)
		if err != nil {
			return 0, nil, err
		}
		return byteMode, []uint8{b}, nil
	}
	hi, lo, err := hexWord(digits)
	if err != nil {
		return 0, nil, err
	}
	return wordMode, []uint8{lo, hi}, nil
}

func hexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad hex byte %q: %w", s, err)
	}
	return uint8(v), nil
}

func hexWord(s string) (hi, lo uint8, err error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("bad hex word %q: %w", s, err)
	}
	return uint8(v >> 8), uint8(v), nil
}

// lookup finds the opcode table entry matching mnemonic exactly, or
// (when the mnemonic has branches/jumps whose mode the table records
// as NoneAddressing even though parseOperand produced a concrete word)
// by mnemonic and operand byte count alone.
func lookup(mnemonic string, mode cpu.AddressingMode, operandBytes int) (*cpu.Opcode, error) {
	wantLen := uint8(operandBytes + 1)
	var byMode, byLen *cpu.Opcode
	for _, entry := range cpu.Opcodes() {
		if entry == nil || entry.Mnemonic != mnemonic {
			continue
		}
		if entry.Mode == mode {
			byMode = entry
		}
		if entry.Len == wantLen && (byLen == nil || entry.Mode < byLen.Mode) {
			byLen = entry
		}
	}
	if byMode != nil {
		return byMode, nil
	}
	if byLen != nil {
		return byLen, nil
	}
	return nil, fmt.Errorf("no opcode %s matching operand form", mnemonic)
}
