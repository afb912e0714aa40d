package cpu

import (
	"testing"

	"github.com/go-test/deep"
)

// registerSnapshot captures everything Reset is documented to
// reinitialize, for structural comparison independent of memory state.
type registerSnapshot struct {
	A, X, Y, P, SP uint8
	PC             uint16
}

func snapshot(c *CPU) registerSnapshot {
	return registerSnapshot{c.A, c.X, c.Y, c.P, c.SP, c.PC}
}

func TestResetIsIdempotentOnRegisters(t *testing.T) {
	c := Create()
	c.Load([]uint8{0xA9, 0xFF, 0xAA, 0xE8, 0x00})
	c.Reset()
	if err := c.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	c.Reset()
	first := snapshot(c)
	c.Reset()
	second := snapshot(c)

	if diff := deep.Equal(first.PC, second.PC); diff != nil {
		t.Errorf("PC not stable across repeated Reset: %v", diff)
	}
	want := registerSnapshot{A: 0, X: 0, Y: 0, P: FlagNegative | FlagInterrupt, SP: StackReset, PC: LoadAddress}
	if diff := deep.Equal(want, second); diff != nil {
		t.Errorf("Reset state mismatch: %v", diff)
	}
}
