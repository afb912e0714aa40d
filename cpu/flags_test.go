package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFlagAndFlag(t *testing.T) {
	c := Create()
	c.setFlag(FlagCarry, true)
	assert.True(t, c.flag(FlagCarry))
	c.setFlag(FlagCarry, false)
	assert.False(t, c.flag(FlagCarry))
}

func TestUpdateNZZero(t *testing.T) {
	c := Create()
	c.updateNZ(0)
	assert.True(t, c.flag(FlagZero))
	assert.False(t, c.flag(FlagNegative))
}

func TestUpdateNZNegative(t *testing.T) {
	c := Create()
	c.updateNZ(0x80)
	assert.False(t, c.flag(FlagZero))
	assert.True(t, c.flag(FlagNegative))
}

func TestUpdateNZPositiveNonZero(t *testing.T) {
	c := Create()
	c.updateNZ(0x10)
	assert.False(t, c.flag(FlagZero))
	assert.False(t, c.flag(FlagNegative))
}
