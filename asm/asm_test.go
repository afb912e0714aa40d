package asm

import (
	"testing"

	"github.com/Error916/6502Emulator/cpu"
	"github.com/stretchr/testify/assert"
)

func TestAssembleImmediateLoad(t *testing.T) {
	out, err := Assemble("8000 LDA #$42")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0xA9, 0x42}, out)
}

func TestAssembleZeroPageVsAbsolute(t *testing.T) {
	out, err := Assemble("8000 LDA $10")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0xA5, 0x10}, out)

	out, err = Assemble("8000 LDA $0200")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0xAD, 0x00, 0x02}, out)
}

func TestAssembleImpliedInstruction(t *testing.T) {
	out, err := Assemble("8000 INX")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0xE8}, out)
}

func TestAssembleJMPAbsoluteVsIndirect(t *testing.T) {
	out, err := Assemble("8000 JMP $9000")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0x4C, 0x00, 0x90}, out)

	out, err = Assemble("8000 JMP ($3000)")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0x6C, 0x00, 0x30}, out)
}

func TestAssembleJSR(t *testing.T) {
	out, err := Assemble("8000 JSR $8005")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0x20, 0x05, 0x80}, out)
}

func TestAssembleIndexedIndirectForms(t *testing.T) {
	out, err := Assemble("8000 LDA ($80,X)")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0xA1, 0x80}, out)

	out, err = Assemble("8000 LDA ($80),Y")
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0xB1, 0x80}, out)
}

func TestAssembleMultilineProgramRunsOnCPU(t *testing.T) {
	src := `8000 LDA #$C0
8002 TAX
8003 INX
8004 BRK`
	program, err := Assemble(src)
	assert.NoError(t, err)

	c := cpu.Create()
	err = c.LoadAndRun(program)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xC1), c.X)
}

func TestAssembleSkipsBlankAndCommentLines(t *testing.T) {
	src := `
; a comment
8000 NOP

8001 BRK
`
	out, err := Assemble(src)
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0xEA, 0x00}, out)
}

func TestAssembleUnknownMnemonicErrors(t *testing.T) {
	_, err := Assemble("8000 ZZZ")
	assert.Error(t, err)
	var parseErr ParseError
	assert.ErrorAs(t, err, &parseErr)
}
