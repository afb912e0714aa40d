package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImmediateReturnsPC(t *testing.T) {
	c := Create()
	c.PC = 0x1234
	addr, err := c.Resolve(Immediate)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), addr)
}

func TestResolveZeroPageXWraps(t *testing.T) {
	c := Create()
	c.X = 0xFF
	c.PC = 0x0200
	c.MemWrite(0x0200, 0x80)
	addr, err := c.Resolve(ZeroPageX)
	assert.NoError(t, err)
	// 0x80 + 0xFF = 0x17F, truncated to a byte: 0x7F, never 0x017F.
	assert.Equal(t, uint16(0x7F), addr)
}

func TestResolveAbsoluteXCanCrossPages(t *testing.T) {
	c := Create()
	c.X = 0x01
	c.PC = 0x0300
	c.MemWrite16(0x0300, 0x01FF)
	addr, err := c.Resolve(AbsoluteX)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0200), addr)
}

func TestResolveNoneAddressingFails(t *testing.T) {
	c := Create()
	_, err := c.Resolve(NoneAddressing)
	assert.Error(t, err)
	var target AddressingModeNotApplicable
	assert.ErrorAs(t, err, &target)
}

func TestAddressingModeStringForm(t *testing.T) {
	assert.Equal(t, "ZeroPage,X", ZeroPageX.String())
	assert.Equal(t, "(Indirect,X)", IndirectX.String())
	assert.Equal(t, "(Indirect),Y", IndirectY.String())
}
