package cpu

// compare implements the shared logic for CMP/CPX/CPY: an unsigned
// subtraction whose borrow becomes Carry (set when reg >= mem) and
// whose 8-bit result feeds N/Z. Nothing is written back to reg.
func (c *CPU) compare(reg uint8, mem uint8) {
	diff := uint16(reg) - uint16(mem)
	c.setFlag(FlagCarry, reg >= mem)
	c.updateNZ(uint8(diff))
}

func iCMP(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.compare(c.A, c.mem.Read(addr))
	return nil
}

func iCPX(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.compare(c.X, c.mem.Read(addr))
	return nil
}

func iCPY(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.compare(c.Y, c.mem.Read(addr))
	return nil
}
