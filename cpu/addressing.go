package cpu

// AddressingMode identifies how an opcode's effective operand address
// is computed from the bytes following the opcode. This is a closed set
// — Resolve switches exhaustively over it and NoneAddressing is the one
// variant that always fails, by design (spec.md 4.1).
type AddressingMode int

const (
	Immediate AddressingMode = iota
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
	// NoneAddressing marks instructions that never call Resolve: implied
	// operands (CLC, TAX, ...), the accumulator form of shifts, and
	// branches/jumps, which each compute their target inline.
	NoneAddressing
)

// String renders the mode for error messages and disassembly.
func (m AddressingMode) String() string {
	switch m {
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPage,X"
	case ZeroPageY:
		return "ZeroPage,Y"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "Absolute,X"
	case AbsoluteY:
		return "Absolute,Y"
	case IndirectX:
		return "(Indirect,X)"
	case IndirectY:
		return "(Indirect),Y"
	case NoneAddressing:
		return "NoneAddressing"
	}
	return "Unknown"
}

// Resolve turns the current PC (pointing at the first operand byte of
// the instruction just fetched) plus an addressing mode into a 16-bit
// effective address. For Immediate it returns PC itself, so the caller
// reads the operand in place. NoneAddressing is a programmer error: it
// is never legal to resolve and always returns AddressingModeNotApplicable.
func (c *CPU) Resolve(mode AddressingMode) (uint16, error) {
	switch mode {
	case Immediate:
		return c.PC, nil

	case ZeroPage:
		return uint16(c.mem.Read(c.PC)), nil

	case ZeroPageX:
		return uint16(c.mem.Read(c.PC) + c.X), nil

	case ZeroPageY:
		return uint16(c.mem.Read(c.PC) + c.Y), nil

	case Absolute:
		return c.mem.Read16(c.PC), nil

	case AbsoluteX:
		return c.mem.Read16(c.PC) + uint16(c.X), nil

	case AbsoluteY:
		return c.mem.Read16(c.PC) + uint16(c.Y), nil

	case IndirectX:
		// Base pointer lives in the zero page and wraps modulo 256
		// before *and* after adding X, so the two pointer bytes are
		// always read from page zero no matter how large ptr+X gets.
		ptr := c.mem.Read(c.PC) + c.X
		lo := uint16(c.mem.Read(uint16(ptr)))
		hi := uint16(c.mem.Read(uint16(ptr + 1)))
		return hi<<8 | lo, nil

	case IndirectY:
		// Unlike IndirectX, Y is added after dereferencing the pointer,
		// so the 16-bit sum can cross into any page — only the pointer
		// lookup itself is confined to page zero.
		base := c.mem.Read(c.PC)
		lo := uint16(c.mem.Read(uint16(base)))
		hi := uint16(c.mem.Read(uint16(base + 1)))
		return (hi<<8 | lo) + uint16(c.Y), nil

	case NoneAddressing:
		return 0, AddressingModeNotApplicable{}
	}
	return 0, AddressingModeNotApplicable{}
}
