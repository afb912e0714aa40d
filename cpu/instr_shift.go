package cpu

// ASL: Carry takes the outgoing bit 7, value shifts left with 0 filled
// into bit 0.
func iASLAcc(c *CPU, _ AddressingMode) error {
	c.setFlag(FlagCarry, c.A&0x80 != 0)
	c.A <<= 1
	c.updateNZ(c.A)
	return nil
}

func iASL(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	v := c.mem.Read(addr)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.mem.Write(addr, v)
	c.updateNZ(v)
	return nil
}

// LSR: Carry takes the outgoing bit 0, value shifts right with 0 filled
// into bit 7.
func iLSRAcc(c *CPU, _ AddressingMode) error {
	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A >>= 1
	c.updateNZ(c.A)
	return nil
}

func iLSR(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	v := c.mem.Read(addr)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.mem.Write(addr, v)
	c.updateNZ(v)
	return nil
}

// ROL: the old Carry feeds into bit 0, the outgoing bit 7 becomes the
// new Carry, then the value shifts left.
func iROLAcc(c *CPU, _ AddressingMode) error {
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, c.A&0x80 != 0)
	c.A <<= 1
	if oldCarry {
		c.A |= 0x01
	}
	c.updateNZ(c.A)
	return nil
}

func iROL(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	v := c.mem.Read(addr)
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.mem.Write(addr, v)
	c.updateNZ(v)
	return nil
}

// ROR: the old Carry feeds into bit 7, the outgoing bit 0 becomes the
// new Carry, then the value shifts right.
func iRORAcc(c *CPU, _ AddressingMode) error {
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A >>= 1
	if oldCarry {
		c.A |= 0x80
	}
	c.updateNZ(c.A)
	return nil
}

func iROR(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	v := c.mem.Read(addr)
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.mem.Write(addr, v)
	c.updateNZ(v)
	return nil
}
