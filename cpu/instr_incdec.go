package cpu

// iINC, iDEC add/subtract 1 (mod 256) at the effective address and
// update N/Z on the new value.
func iINC(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	v := c.mem.Read(addr) + 1
	c.mem.Write(addr, v)
	c.updateNZ(v)
	return nil
}

func iDEC(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	v := c.mem.Read(addr) - 1
	c.mem.Write(addr, v)
	c.updateNZ(v)
	return nil
}

func iINX(c *CPU, _ AddressingMode) error {
	c.X++
	c.updateNZ(c.X)
	return nil
}

func iINY(c *CPU, _ AddressingMode) error {
	c.Y++
	c.updateNZ(c.Y)
	return nil
}

func iDEX(c *CPU, _ AddressingMode) error {
	c.X--
	c.updateNZ(c.X)
	return nil
}

func iDEY(c *CPU, _ AddressingMode) error {
	c.Y--
	c.updateNZ(c.Y)
	return nil
}
