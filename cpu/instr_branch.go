package cpu

// branch reads the signed 8-bit offset at PC. If cond is true, PC is
// set to PC + 1 + offset (sign-extended); the +1 accounts for the
// offset byte itself, which the branch opcode's Len field would
// otherwise have Step skip past. If cond is false, PC is left alone so
// Step applies the ordinary Len-1 advance.
func (c *CPU) branch(cond bool) {
	offset := int8(c.mem.Read(c.PC))
	if !cond {
		return
	}
	c.PC = uint16(int32(c.PC) + 1 + int32(offset))
}

func iBPL(c *CPU, _ AddressingMode) error { c.branch(!c.flag(FlagNegative)); return nil }
func iBMI(c *CPU, _ AddressingMode) error { c.branch(c.flag(FlagNegative)); return nil }
func iBVC(c *CPU, _ AddressingMode) error { c.branch(!c.flag(FlagOverflow)); return nil }
func iBVS(c *CPU, _ AddressingMode) error { c.branch(c.flag(FlagOverflow)); return nil }
func iBCC(c *CPU, _ AddressingMode) error { c.branch(!c.flag(FlagCarry)); return nil }
func iBCS(c *CPU, _ AddressingMode) error { c.branch(c.flag(FlagCarry)); return nil }
func iBNE(c *CPU, _ AddressingMode) error { c.branch(!c.flag(FlagZero)); return nil }
func iBEQ(c *CPU, _ AddressingMode) error { c.branch(c.flag(FlagZero)); return nil }
