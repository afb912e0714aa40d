package cpu

// iBIT tests A & mem without storing the result: Zero reflects whether
// the AND is zero, while Negative and Overflow are copied directly from
// bits 7 and 6 of the memory operand, not from the AND result.
func iBIT(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	v := c.mem.Read(addr)
	c.setFlag(FlagZero, c.A&v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
	c.setFlag(FlagOverflow, v&0x40 != 0)
	return nil
}

func iNOP(c *CPU, _ AddressingMode) error {
	return nil
}

// iBRK signals program termination. There is no interrupt vector to jump
// through here: Step surfaces this as a Halt error, which Run treats as
// a clean stop rather than a failure.
func iBRK(c *CPU, _ AddressingMode) error {
	return Halt{PC: c.PC}
}
