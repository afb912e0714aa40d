package cpu

// Transfers copy one register into another and update N/Z on the
// destination, with the sole exception of TXS (stack pointer is never
// flag-checked).

func iTAX(c *CPU, _ AddressingMode) error {
	c.X = c.A
	c.updateNZ(c.X)
	return nil
}

func iTAY(c *CPU, _ AddressingMode) error {
	c.Y = c.A
	c.updateNZ(c.Y)
	return nil
}

func iTSX(c *CPU, _ AddressingMode) error {
	c.X = c.SP
	c.updateNZ(c.X)
	return nil
}

func iTXA(c *CPU, _ AddressingMode) error {
	c.A = c.X
	c.updateNZ(c.A)
	return nil
}

// iTXS copies X into SP. Unlike every other transfer this does not
// touch N/Z: SP isn't a value register, it's a pointer.
func iTXS(c *CPU, _ AddressingMode) error {
	c.SP = c.X
	return nil
}

func iTYA(c *CPU, _ AddressingMode) error {
	c.A = c.Y
	c.updateNZ(c.A)
	return nil
}
