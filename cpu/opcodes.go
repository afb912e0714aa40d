package cpu

// handlerFunc is the shape every instruction handler implements. mode is
// passed through from the opcode table entry so one handler (e.g. iLDA)
// can serve every addressing form of its mnemonic. A handler may read
// further operand bytes at c.PC, touch registers/flags/memory/SP, and
// optionally move PC itself (branches, JMP, JSR, RTS, RTI, BRK); if it
// doesn't, Step advances PC past the operand bytes for it.
type handlerFunc func(c *CPU, mode AddressingMode) error

// Opcode is one entry of the 256-slot dispatch table: the raw byte,
// its 3-character mnemonic, total instruction length in bytes, nominal
// (unaccounted) cycle count, addressing mode, and the handler to run.
type Opcode struct {
	Code     uint8
	Mnemonic string
	Len      uint8
	Cycles   uint8
	Mode     AddressingMode
	exec     handlerFunc
}

// opcodeTable is the dense 256-entry lookup keyed by opcode byte.
// Unpopulated slots are nil and represent an illegal opcode; Step
// reports UnsupportedOpcode for those rather than guessing intent.
//
// Entries are grounded in the documented 6502 instruction set. The
// reference implementation this core descends from left ASL/LSR/ROL/ROR
// entirely unwired despite declaring handler stubs for them; those rows
// are filled in here at their standard, widely documented opcode values
// since spec section 4.6 requires the full shift/rotate family.
var opcodeTable = [256]*Opcode{
	0x00: {0x00, "BRK", 1, 7, NoneAddressing, iBRK},
	0x01: {0x01, "ORA", 2, 6, IndirectX, iORA},
	0x05: {0x05, "ORA", 2, 3, ZeroPage, iORA},
	0x06: {0x06, "ASL", 2, 5, ZeroPage, iASL},
	0x08: {0x08, "PHP", 1, 3, NoneAddressing, iPHP},
	0x09: {0x09, "ORA", 2, 2, Immediate, iORA},
	0x0A: {0x0A, "ASL", 1, 2, NoneAddressing, iASLAcc},
	0x0D: {0x0D, "ORA", 3, 4, Absolute, iORA},
	0x0E: {0x0E, "ASL", 3, 6, Absolute, iASL},

	0x10: {0x10, "BPL", 2, 2, NoneAddressing, iBPL},
	0x11: {0x11, "ORA", 2, 5, IndirectY, iORA},
	0x15: {0x15, "ORA", 2, 4, ZeroPageX, iORA},
	0x16: {0x16, "ASL", 2, 6, ZeroPageX, iASL},
	0x18: {0x18, "CLC", 1, 2, NoneAddressing, iCLC},
	0x19: {0x19, "ORA", 3, 4, AbsoluteY, iORA},
	0x1D: {0x1D, "ORA", 3, 4, AbsoluteX, iORA},
	0x1E: {0x1E, "ASL", 3, 7, AbsoluteX, iASL},

	0x20: {0x20, "JSR", 3, 6, NoneAddressing, iJSR},
	0x21: {0x21, "AND", 2, 6, IndirectX, iAND},
	0x24: {0x24, "BIT", 2, 3, ZeroPage, iBIT},
	0x25: {0x25, "AND", 2, 3, ZeroPage, iAND},
	0x26: {0x26, "ROL", 2, 5, ZeroPage, iROL},
	0x28: {0x28, "PLP", 1, 4, NoneAddressing, iPLP},
	0x29: {0x29, "AND", 2, 2, Immediate, iAND},
	0x2A: {0x2A, "ROL", 1, 2, NoneAddressing, iROLAcc},
	0x2C: {0x2C, "BIT", 3, 4, Absolute, iBIT},
	0x2D: {0x2D, "AND", 3, 4, Absolute, iAND},
	0x2E: {0x2E, "ROL", 3, 6, Absolute, iROL},

	0x30: {0x30, "BMI", 2, 2, NoneAddressing, iBMI},
	0x31: {0x31, "AND", 2, 5, IndirectY, iAND},
	0x35: {0x35, "AND", 2, 4, ZeroPageX, iAND},
	0x36: {0x36, "ROL", 2, 6, ZeroPageX, iROL},
	0x38: {0x38, "SEC", 1, 2, NoneAddressing, iSEC},
	0x39: {0x39, "AND", 3, 4, AbsoluteY, iAND},
	0x3D: {0x3D, "AND", 3, 4, AbsoluteX, iAND},
	0x3E: {0x3E, "ROL", 3, 7, AbsoluteX, iROL},

	0x40: {0x40, "RTI", 1, 6, NoneAddressing, iRTI},
	0x41: {0x41, "EOR", 2, 6, IndirectX, iEOR},
	0x45: {0x45, "EOR", 2, 3, ZeroPage, iEOR},
	0x46: {0x46, "LSR", 2, 5, ZeroPage, iLSR},
	0x48: {0x48, "PHA", 1, 3, NoneAddressing, iPHA},
	0x49: {0x49, "EOR", 2, 2, Immediate, iEOR},
	0x4A: {0x4A, "LSR", 1, 2, NoneAddressing, iLSRAcc},
	0x4C: {0x4C, "JMP", 3, 3, NoneAddressing, iJMPAbsolute},
	0x4D: {0x4D, "EOR", 3, 4, Absolute, iEOR},
	0x4E: {0x4E, "LSR", 3, 6, Absolute, iLSR},

	0x50: {0x50, "BVC", 2, 2, NoneAddressing, iBVC},
	0x51: {0x51, "EOR", 2, 5, IndirectY, iEOR},
	0x55: {0x55, "EOR", 2, 4, ZeroPageX, iEOR},
	0x56: {0x56, "LSR", 2, 6, ZeroPageX, iLSR},
	0x58: {0x58, "CLI", 1, 2, NoneAddressing, iCLI},
	0x59: {0x59, "EOR", 3, 4, AbsoluteY, iEOR},
	0x5D: {0x5D, "EOR", 3, 4, AbsoluteX, iEOR},
	0x5E: {0x5E, "LSR", 3, 7, AbsoluteX, iLSR},

	0x60: {0x60, "RTS", 1, 6, NoneAddressing, iRTS},
	0x61: {0x61, "ADC", 2, 6, IndirectX, iADC},
	0x65: {0x65, "ADC", 2, 3, ZeroPage, iADC},
	0x66: {0x66, "ROR", 2, 5, ZeroPage, iROR},
	0x68: {0x68, "PLA", 1, 4, NoneAddressing, iPLA},
	0x69: {0x69, "ADC", 2, 2, Immediate, iADC},
	0x6A: {0x6A, "ROR", 1, 2, NoneAddressing, iRORAcc},
	0x6C: {0x6C, "JMP", 3, 5, NoneAddressing, iJMPIndirect},
	0x6D: {0x6D, "ADC", 3, 4, Absolute, iADC},
	0x6E: {0x6E, "ROR", 3, 6, Absolute, iROR},

	0x70: {0x70, "BVS", 2, 2, NoneAddressing, iBVS},
	0x71: {0x71, "ADC", 2, 5, IndirectY, iADC},
	0x75: {0x75, "ADC", 2, 4, ZeroPageX, iADC},
	0x76: {0x76, "ROR", 2, 6, ZeroPageX, iROR},
	0x78: {0x78, "SEI", 1, 2, NoneAddressing, iSEI},
	0x79: {0x79, "ADC", 3, 4, AbsoluteY, iADC},
	0x7D: {0x7D, "ADC", 3, 4, AbsoluteX, iADC},
	0x7E: {0x7E, "ROR", 3, 7, AbsoluteX, iROR},

	0x81: {0x81, "STA", 2, 6, IndirectX, iSTA},
	0x84: {0x84, "STY", 2, 3, ZeroPage, iSTY},
	0x85: {0x85, "STA", 2, 3, ZeroPage, iSTA},
	0x86: {0x86, "STX", 2, 3, ZeroPage, iSTX},
	0x88: {0x88, "DEY", 1, 2, NoneAddressing, iDEY},
	0x8A: {0x8A, "TXA", 1, 2, NoneAddressing, iTXA},
	0x8C: {0x8C, "STY", 3, 4, Absolute, iSTY},
	0x8D: {0x8D, "STA", 3, 4, Absolute, iSTA},
	0x8E: {0x8E, "STX", 3, 4, Absolute, iSTX},

	0x90: {0x90, "BCC", 2, 2, NoneAddressing, iBCC},
	0x91: {0x91, "STA", 2, 6, IndirectY, iSTA},
	0x94: {0x94, "STY", 2, 4, ZeroPageX, iSTY},
	0x95: {0x95, "STA", 2, 4, ZeroPageX, iSTA},
	0x96: {0x96, "STX", 2, 4, ZeroPageY, iSTX},
	0x98: {0x98, "TYA", 1, 2, NoneAddressing, iTYA},
	0x99: {0x99, "STA", 3, 5, AbsoluteY, iSTA},
	0x9A: {0x9A, "TXS", 1, 2, NoneAddressing, iTXS},
	0x9D: {0x9D, "STA", 3, 5, AbsoluteX, iSTA},

	0xA0: {0xA0, "LDY", 2, 2, Immediate, iLDY},
	0xA1: {0xA1, "LDA", 2, 6, IndirectX, iLDA},
	0xA2: {0xA2, "LDX", 2, 2, Immediate, iLDX},
	0xA4: {0xA4, "LDY", 2, 3, ZeroPage, iLDY},
	0xA5: {0xA5, "LDA", 2, 3, ZeroPage, iLDA},
	0xA6: {0xA6, "LDX", 2, 3, ZeroPage, iLDX},
	0xA8: {0xA8, "TAY", 1, 2, NoneAddressing, iTAY},
	0xA9: {0xA9, "LDA", 2, 2, Immediate, iLDA},
	0xAA: {0xAA, "TAX", 1, 2, NoneAddressing, iTAX},
	0xAC: {0xAC, "LDY", 3, 4, Absolute, iLDY},
	0xAD: {0xAD, "LDA", 3, 4, Absolute, iLDA},
	0xAE: {0xAE, "LDX", 3, 4, Absolute, iLDX},

	0xB0: {0xB0, "BCS", 2, 2, NoneAddressing, iBCS},
	0xB1: {0xB1, "LDA", 2, 5, IndirectY, iLDA},
	0xB4: {0xB4, "LDY", 2, 4, ZeroPageX, iLDY},
	0xB5: {0xB5, "LDA", 2, 4, ZeroPageX, iLDA},
	0xB6: {0xB6, "LDX", 2, 4, ZeroPageY, iLDX},
	0xB8: {0xB8, "CLV", 1, 2, NoneAddressing, iCLV},
	0xB9: {0xB9, "LDA", 3, 4, AbsoluteY, iLDA},
	0xBA: {0xBA, "TSX", 1, 2, NoneAddressing, iTSX},
	0xBC: {0xBC, "LDY", 3, 4, AbsoluteX, iLDY},
	0xBD: {0xBD, "LDA", 3, 4, AbsoluteX, iLDA},
	0xBE: {0xBE, "LDX", 3, 4, AbsoluteY, iLDX},

	0xC0: {0xC0, "CPY", 2, 2, Immediate, iCPY},
	0xC1: {0xC1, "CMP", 2, 6, IndirectX, iCMP},
	0xC4: {0xC4, "CPY", 2, 3, ZeroPage, iCPY},
	0xC5: {0xC5, "CMP", 2, 3, ZeroPage, iCMP},
	0xC6: {0xC6, "DEC", 2, 5, ZeroPage, iDEC},
	0xC8: {0xC8, "INY", 1, 2, NoneAddressing, iINY},
	0xC9: {0xC9, "CMP", 2, 2, Immediate, iCMP},
	0xCA: {0xCA, "DEX", 1, 2, NoneAddressing, iDEX},
	0xCC: {0xCC, "CPY", 3, 4, Absolute, iCPY},
	0xCD: {0xCD, "CMP", 3, 4, Absolute, iCMP},
	0xCE: {0xCE, "DEC", 3, 6, Absolute, iDEC},

	0xD0: {0xD0, "BNE", 2, 2, NoneAddressing, iBNE},
	0xD1: {0xD1, "CMP", 2, 5, IndirectY, iCMP},
	0xD5: {0xD5, "CMP", 2, 4, ZeroPageX, iCMP},
	0xD6: {0xD6, "DEC", 2, 6, ZeroPageX, iDEC},
	0xD8: {0xD8, "CLD", 1, 2, NoneAddressing, iCLD},
	0xD9: {0xD9, "CMP", 3, 4, AbsoluteY, iCMP},
	0xDD: {0xDD, "CMP", 3, 4, AbsoluteX, iCMP},
	0xDE: {0xDE, "DEC", 3, 7, AbsoluteX, iDEC},

	0xE0: {0xE0, "CPX", 2, 2, Immediate, iCPX},
	0xE1: {0xE1, "SBC", 2, 6, IndirectX, iSBC},
	0xE4: {0xE4, "CPX", 2, 3, ZeroPage, iCPX},
	0xE5: {0xE5, "SBC", 2, 3, ZeroPage, iSBC},
	0xE6: {0xE6, "INC", 2, 5, ZeroPage, iINC},
	0xE8: {0xE8, "INX", 1, 2, NoneAddressing, iINX},
	0xE9: {0xE9, "SBC", 2, 2, Immediate, iSBC},
	0xEA: {0xEA, "NOP", 1, 2, NoneAddressing, iNOP},
	0xEC: {0xEC, "CPX", 3, 4, Absolute, iCPX},
	0xED: {0xED, "SBC", 3, 4, Absolute, iSBC},
	0xEE: {0xEE, "INC", 3, 6, Absolute, iINC},

	0xF0: {0xF0, "BEQ", 2, 2, NoneAddressing, iBEQ},
	0xF1: {0xF1, "SBC", 2, 5, IndirectY, iSBC},
	0xF5: {0xF5, "SBC", 2, 4, ZeroPageX, iSBC},
	0xF6: {0xF6, "INC", 2, 6, ZeroPageX, iINC},
	0xF8: {0xF8, "SED", 1, 2, NoneAddressing, iSED},
	0xF9: {0xF9, "SBC", 3, 4, AbsoluteY, iSBC},
	0xFD: {0xFD, "SBC", 3, 4, AbsoluteX, iSBC},
	0xFE: {0xFE, "INC", 3, 7, AbsoluteX, iINC},
}

// Opcodes exposes the dispatch table read-only, keyed by opcode byte,
// for consumers like the disassembler that need mnemonic/length/mode
// without executing anything. A nil entry means the byte is illegal.
func Opcodes() *[256]*Opcode {
	return &opcodeTable
}
