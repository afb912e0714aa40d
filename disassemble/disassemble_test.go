package disassemble

import (
	"strings"
	"testing"

	"github.com/Error916/6502Emulator/cpu"
	"github.com/stretchr/testify/assert"
)

func TestStepImmediate(t *testing.T) {
	c := cpu.Create()
	c.Load([]uint8{0xA9, 0x42})
	c.Reset()
	text, n := Step(cpu.LoadAddress, c)
	assert.Equal(t, 2, n)
	assert.True(t, strings.Contains(text, "LDA #$42"), text)
}

func TestStepAbsoluteByteOrderIsLittleEndian(t *testing.T) {
	c := cpu.Create()
	c.Load([]uint8{0xAD, 0x00, 0x02})
	c.Reset()
	text, n := Step(cpu.LoadAddress, c)
	assert.Equal(t, 3, n)
	assert.True(t, strings.Contains(text, "LDA $0200"), text)
}

func TestStepBranchResolvesTarget(t *testing.T) {
	c := cpu.Create()
	c.Load([]uint8{0xD0, 0x02})
	c.Reset()
	text, n := Step(cpu.LoadAddress, c)
	assert.Equal(t, 2, n)
	assert.True(t, strings.Contains(text, "BNE"), text)
	assert.True(t, strings.Contains(text, "$8004"), text)
}

func TestStepUnassignedByte(t *testing.T) {
	c := cpu.Create()
	c.Load([]uint8{0x02})
	c.Reset()
	text, n := Step(cpu.LoadAddress, c)
	assert.Equal(t, 1, n)
	assert.True(t, strings.Contains(text, ".byte"), text)
}

func TestStepDoesNotFollowJumps(t *testing.T) {
	c := cpu.Create()
	c.Load([]uint8{0x4C, 0x00, 0x90, 0xEA})
	c.Reset()
	text, n := Step(cpu.LoadAddress, c)
	assert.Equal(t, 3, n)
	assert.True(t, strings.Contains(text, "JMP $9000"), text)

	next, n2 := Step(cpu.LoadAddress+uint16(n), c)
	assert.Equal(t, 1, n2)
	assert.True(t, strings.Contains(next, "NOP"), next)
}
