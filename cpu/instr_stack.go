package cpu

// iPHA pushes A unchanged.
func iPHA(c *CPU, _ AddressingMode) error {
	c.push8(c.A)
	return nil
}

// iPLA pops into A and updates N/Z on the popped value.
func iPLA(c *CPU, _ AddressingMode) error {
	c.A = c.pop8()
	c.updateNZ(c.A)
	return nil
}

// iPHP pushes P with the Break and Unused bits forced set, without
// altering the live P register. This is the documented PHP/BRK status
// frame: a PLP later strips Break back out.
func iPHP(c *CPU, _ AddressingMode) error {
	c.push8(c.P | FlagBreak | FlagUnused)
	return nil
}

// iPLP pops into P, then normalizes bits 4/5: Break is cleared (it only
// ever reflects a pushed frame, never live status) and Unused is set
// (it is always 1).
func iPLP(c *CPU, _ AddressingMode) error {
	c.P = c.pop8()
	c.P &^= FlagBreak
	c.P |= FlagUnused
	return nil
}
