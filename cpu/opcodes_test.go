package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOpcodeTableSelfConsistent walks every populated slot and checks
// that Code matches its own table index, that Mnemonic is set, and that
// Len lies in 1..3, catching copy-paste slips in the table literal.
func TestOpcodeTableSelfConsistent(t *testing.T) {
	for i, op := range Opcodes() {
		if op == nil {
			continue
		}
		assert.Equal(t, uint8(i), op.Code, "table index %02X holds mismatched Code", i)
		assert.NotEmpty(t, op.Mnemonic, "opcode %02X has no mnemonic", i)
		assert.GreaterOrEqual(t, op.Len, uint8(1))
		assert.LessOrEqual(t, op.Len, uint8(3))
	}
}

func TestShiftRotateFamilyIsWired(t *testing.T) {
	// These four mnemonics were absent from the reference this table
	// descends from; confirm all twenty opcodes made it in.
	wantCodes := []uint8{
		0x0A, 0x06, 0x16, 0x0E, 0x1E, // ASL
		0x4A, 0x46, 0x56, 0x4E, 0x5E, // LSR
		0x2A, 0x26, 0x36, 0x2E, 0x3E, // ROL
		0x6A, 0x66, 0x76, 0x6E, 0x7E, // ROR
	}
	table := Opcodes()
	for _, code := range wantCodes {
		assert.NotNil(t, table[code], "expected shift/rotate opcode 0x%02X to be wired", code)
	}
}

func TestUnassignedSlotIsNil(t *testing.T) {
	assert.Nil(t, Opcodes()[0x02])
}
