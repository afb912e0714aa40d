package cpu

// iLDA, iLDX, iLDY read a byte at the effective address into A/X/Y and
// update N/Z from the loaded value. Carry and overflow are untouched.
func iLDA(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.A = c.mem.Read(addr)
	c.updateNZ(c.A)
	return nil
}

func iLDX(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.X = c.mem.Read(addr)
	c.updateNZ(c.X)
	return nil
}

func iLDY(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.Y = c.mem.Read(addr)
	c.updateNZ(c.Y)
	return nil
}

// iSTA, iSTX, iSTY write A/X/Y to the effective address. Flags are
// never touched by a store.
func iSTA(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.mem.Write(addr, c.A)
	return nil
}

func iSTX(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.mem.Write(addr, c.X)
	return nil
}

func iSTY(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.mem.Write(addr, c.Y)
	return nil
}
