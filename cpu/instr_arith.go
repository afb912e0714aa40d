package cpu

// addToA implements the 6502 ADC semantics with Decimal mode ignored
// (the NES's Ricoh variant never implemented BCD, and this core carries
// that as a blanket simplification regardless of Variant). Carry-in is
// the live Carry flag, taken as a clean 0/1 rather than the raw status
// byte — an earlier revision of the reference this is grounded on had
// an operator-precedence bug that collapsed the whole sum to 0 or 1
// instead.
func (c *CPU) addToA(d uint8) {
	carryIn := uint16(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}

	sum := uint16(c.A) + uint16(d) + carryIn
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	// Overflow: operand and result disagree in sign, and result and the
	// pre-update accumulator disagree in sign too. Signed overflow can
	// only happen when both operands share a sign that the result
	// doesn't.
	c.setFlag(FlagOverflow, (d^result)&(result^c.A)&0x80 != 0)

	c.A = result
	c.updateNZ(c.A)
}

// iADC implements ADC via addToA.
func iADC(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.addToA(c.mem.Read(addr))
	return nil
}

// iSBC is defined as addToA(^d): the bitwise complement of the operand,
// equivalent to 255-d, which reproduces two's-complement
// subtract-with-borrow (A + (255-d) + C == A - d - (1-C)).
func iSBC(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.addToA(^c.mem.Read(addr))
	return nil
}
