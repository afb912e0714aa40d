// Package cpu implements the MOS 6502 instruction set: registers,
// status flags, the addressing-mode resolver, the 256-entry opcode
// table, and the fetch-decode-execute loop. It reproduces documented
// 6502 behavior bit for bit, including the zero-page wraparound quirks
// and the JMP-indirect page-boundary bug, but does not model cycle
// timing, interrupts, BCD, or illegal opcodes.
package cpu

import (
	"errors"

	"github.com/Error916/6502Emulator/memory"
)

// Variant distinguishes the handful of 6502 family members that differ
// in ways this core could plausibly grow to model (BCD support,
// illegal-opcode behavior). Every variant currently executes identical
// code paths here; the field exists so a future hardware-accurate mode
// (spec open question: BRK pushing PC/P and vectoring through 0xFFFE)
// has somewhere to switch on.
type Variant int

const (
	// RicohNES is the NES's 2A03, identical to NMOS except BCD is
	// unimplemented. It is the default because this core never
	// exercises BCD regardless of variant.
	RicohNES Variant = iota
	NMOS
	CMOS
)

const (
	// StackBase is the start address of the 256-byte stack page (page
	// 1); the actual stack address is always StackBase + SP.
	StackBase = uint16(0x0100)
	// StackReset is the SP value after Create/Reset.
	StackReset = uint8(0xFD)
	// ResetVector holds the little-endian address execution resumes at
	// after a reset.
	ResetVector = uint16(0xFFFC)
	// LoadAddress is where Load places a program by default.
	LoadAddress = uint16(0x8000)
)

// CPU is the complete, self-contained machine state: registers, status
// flags, and the full 64 KiB address space. It is a single value with
// no indirection beyond what memory.Bus itself needs, so zero dynamic
// allocation is required to create, reset, or run one.
type CPU struct {
	A   uint8  // Accumulator.
	X   uint8  // Index register.
	Y   uint8  // Index register.
	P   uint8  // Status flags, NV-BDIZC.
	SP  uint8  // Stack pointer; stack address is StackBase + SP.
	PC  uint16 // Program counter.
	mem memory.Bus

	Variant Variant
}

// Create returns a freshly initialized CPU: A=X=Y=0, P=(N|I), SP=0xFD,
// PC=0, and a zeroed 64 KiB address space. N|I is the documented
// post-reset status; a zero program counter is overwritten by the next
// Reset once a reset vector is in place.
func Create() *CPU {
	c := &CPU{}
	c.mem.Clear()
	c.P = FlagNegative | FlagInterrupt
	c.SP = StackReset
	return c
}

// MemRead returns the byte at addr.
func (c *CPU) MemRead(addr uint16) uint8 { return c.mem.Read(addr) }

// MemWrite stores val at addr.
func (c *CPU) MemWrite(addr uint16, val uint8) { c.mem.Write(addr, val) }

// MemRead16 performs a little-endian 16-bit read at addr.
func (c *CPU) MemRead16(addr uint16) uint16 { return c.mem.Read16(addr) }

// MemWrite16 performs a little-endian 16-bit write at addr.
func (c *CPU) MemWrite16(addr uint16, val uint16) { c.mem.Write16(addr, val) }

// push8 pushes val onto the stack and decrements SP (mod 256).
func (c *CPU) push8(val uint8) {
	c.mem.Write(StackBase+uint16(c.SP), val)
	c.SP--
}

// pop8 increments SP (mod 256) and returns the byte now on top.
func (c *CPU) pop8() uint8 {
	c.SP++
	return c.mem.Read(StackBase + uint16(c.SP))
}

// push16 pushes val high byte first, then low byte, matching how RTS
// expects to find them and how JSR writes them.
func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xFF))
}

// pop16 pops the low byte, then the high byte, composing little-endian.
func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop8())
	hi := uint16(c.pop8())
	return hi<<8 | lo
}

// Load copies program into memory starting at LoadAddress (0x8000) and
// points the reset vector at it.
func (c *CPU) Load(program []uint8) {
	c.mem.Load(LoadAddress, program)
	c.mem.Write16(ResetVector, LoadAddress)
}

// Reset re-initializes registers as in Create (A=X=Y=0, P=(N|I),
// SP=0xFD) and loads PC from the reset vector. Memory contents are left
// untouched.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.P = FlagNegative | FlagInterrupt
	c.SP = StackReset
	c.PC = c.mem.Read16(ResetVector)
}

// Step fetches, decodes, and executes exactly one instruction. On BRK
// it returns a Halt error; on an unpopulated opcode slot or an attempt
// to resolve NoneAddressing it returns the corresponding typed error.
// Hosts that want to bound execution (a debugger, a test harness) call
// Step directly instead of Run.
func (c *CPU) Step() error {
	op := c.mem.Read(c.PC)
	opPC := c.PC
	c.PC++
	saved := c.PC

	entry := opcodeTable[op]
	if entry == nil {
		return UnsupportedOpcode{Opcode: op, PC: opPC}
	}

	if err := entry.exec(c, entry.Mode); err != nil {
		return err
	}

	// The handler contract (spec 4.6/4.8): if it didn't move PC itself,
	// the loop advances past the operand bytes it didn't consume
	// (length includes the opcode byte already read above).
	if c.PC == saved {
		c.PC += uint16(entry.Len - 1)
	}
	return nil
}

// Run executes instructions until BRK. A BRK halt is the normal,
// expected end of the stream and is reported as a nil error; any other
// error (unsupported opcode, bad addressing mode) aborts the run and is
// returned to the caller.
func (c *CPU) Run() error {
	for {
		err := c.Step()
		if err == nil {
			continue
		}
		var halt Halt
		if errors.As(err, &halt) {
			return nil
		}
		return err
	}
}

// LoadAndRun is the convenience entry point: Load, then Reset, then Run.
func (c *CPU) LoadAndRun(program []uint8) error {
	c.Load(program)
	c.Reset()
	return c.Run()
}
