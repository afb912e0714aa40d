package cpu

// Flag instructions clear or set a single named bit in P. There is no
// SEV: overflow can only ever be cleared explicitly.

func iCLC(c *CPU, _ AddressingMode) error { c.setFlag(FlagCarry, false); return nil }
func iSEC(c *CPU, _ AddressingMode) error { c.setFlag(FlagCarry, true); return nil }
func iCLI(c *CPU, _ AddressingMode) error { c.setFlag(FlagInterrupt, false); return nil }
func iSEI(c *CPU, _ AddressingMode) error { c.setFlag(FlagInterrupt, true); return nil }
func iCLV(c *CPU, _ AddressingMode) error { c.setFlag(FlagOverflow, false); return nil }
func iCLD(c *CPU, _ AddressingMode) error { c.setFlag(FlagDecimal, false); return nil }
func iSED(c *CPU, _ AddressingMode) error { c.setFlag(FlagDecimal, true); return nil }
