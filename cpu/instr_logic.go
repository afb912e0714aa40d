package cpu

// AND, EOR, and ORA are direct bitwise updates to A with N/Z set from
// the result; carry and overflow are untouched. The reference this core
// is based on routed all three through the ADC adder, which corrupted C
// and V on every logic op — that is a defect, not a feature, and is not
// reproduced here.

func iAND(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.A &= c.mem.Read(addr)
	c.updateNZ(c.A)
	return nil
}

func iEOR(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.A ^= c.mem.Read(addr)
	c.updateNZ(c.A)
	return nil
}

func iORA(c *CPU, mode AddressingMode) error {
	addr, err := c.Resolve(mode)
	if err != nil {
		return err
	}
	c.A |= c.mem.Read(addr)
	c.updateNZ(c.A)
	return nil
}
