package cpu

// iJMPAbsolute sets PC to the 16-bit word at PC. This is not modeled as
// Resolve(Absolute) because JMP needs the absolute value itself as the
// new PC, not a pointer to read a byte from.
func iJMPAbsolute(c *CPU, _ AddressingMode) error {
	c.PC = c.mem.Read16(c.PC)
	return nil
}

// iJMPIndirect reproduces the famous 6502 page-wrap bug: if the pointer
// address's low byte is 0xFF, the high byte of the target is read from
// the start of the same page ($xx00) rather than from the next page, as
// a naive ptr+1 would. Real hardware never carries between the two
// pointer bytes, so this must be reproduced verbatim.
func iJMPIndirect(c *CPU, _ AddressingMode) error {
	ptr := c.mem.Read16(c.PC)
	lo := uint16(c.mem.Read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.mem.Read(hiAddr))
	c.PC = hi<<8 | lo
	return nil
}

// iJSR pushes the address of the last byte of the JSR instruction (PC+1,
// since PC currently points at the first operand byte of a 3-byte
// instruction) and jumps to the absolute target.
func iJSR(c *CPU, _ AddressingMode) error {
	target := c.mem.Read16(c.PC)
	c.push16(c.PC + 1)
	c.PC = target
	return nil
}

// iRTS pops the return address and adds one, undoing JSR's PC-1 push.
func iRTS(c *CPU, _ AddressingMode) error {
	c.PC = c.pop16() + 1
	return nil
}

// iRTI pops P (normalizing Break/Unused like PLP) then pops PC with no
// adjustment, since unlike JSR/RTS nothing was off-by-one to begin with.
func iRTI(c *CPU, _ AddressingMode) error {
	c.P = c.pop8()
	c.P &^= FlagBreak
	c.P |= FlagUnused
	c.PC = c.pop16()
	return nil
}
