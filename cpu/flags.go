package cpu

// Status register (P) bit layout, NV-BDIZC. Bit 5 has no hardware
// function; it reads back as 1 whenever P is pushed to the stack.
const (
	FlagCarry     = uint8(1 << 0)
	FlagZero      = uint8(1 << 1)
	FlagInterrupt = uint8(1 << 2)
	FlagDecimal   = uint8(1 << 3)
	FlagBreak     = uint8(1 << 4)
	FlagUnused    = uint8(1 << 5) // Always set on any push of P.
	FlagOverflow  = uint8(1 << 6)
	FlagNegative  = uint8(1 << 7)
)

// setFlag sets or clears bit in P depending on cond.
func (c *CPU) setFlag(bit uint8, cond bool) {
	if cond {
		c.P |= bit
	} else {
		c.P &^= bit
	}
}

func (c *CPU) flag(bit uint8) bool {
	return c.P&bit != 0
}

// Flag reports whether the given status bit is currently set. Exported
// for hosts outside the package (the CLI driver, the debugger) that
// need to render flag state without reaching into P directly.
func (c *CPU) Flag(bit uint8) bool {
	return c.flag(bit)
}

// updateNZ sets Z if result is zero and N to bit 7 of result. No other
// flags are touched.
func (c *CPU) updateNZ(result uint8) {
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagNegative, result&0x80 != 0)
}
