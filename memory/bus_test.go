package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	var b Bus
	b.Write(0x10, 0x55)
	assert.Equal(t, uint8(0x55), b.Read(0x10))
}

func TestRead16Write16RoundTrip(t *testing.T) {
	var b Bus
	for _, addr := range []uint16{0x0000, 0x00FF, 0x1234, 0xFFFE} {
		for _, val := range []uint16{0x0000, 0x00FF, 0xABCD, 0xFFFF} {
			b.Write16(addr, val)
			assert.Equal(t, val, b.Read16(addr), "addr=%#04x val=%#04x", addr, val)
		}
	}
}

func TestRead16LittleEndian(t *testing.T) {
	var b Bus
	b.Write(0x3000, 0x80)
	b.Write(0x3001, 0x40)
	// Deliberately not a wraparound case: plain little-endian composition.
	assert.Equal(t, uint16(0x4080), b.Read16(0x3000))
}

func TestClearZeroesEverything(t *testing.T) {
	var b Bus
	b.Write(0x00, 0xFF)
	b.Write(0xFFFF, 0xFF)
	b.Clear()
	assert.Equal(t, uint8(0), b.Read(0x00))
	assert.Equal(t, uint8(0), b.Read(0xFFFF))
}

func TestLoadCopiesAtOffset(t *testing.T) {
	var b Bus
	program := []uint8{0xA9, 0x01, 0x00}
	b.Load(0x8000, program)
	assert.Equal(t, uint8(0xA9), b.Read(0x8000))
	assert.Equal(t, uint8(0x01), b.Read(0x8001))
	assert.Equal(t, uint8(0x00), b.Read(0x8002))
}

func TestLastAddressIsReadable(t *testing.T) {
	// The reference C source under-allocated memory by one byte, making
	// 0xFFFF (part of the NMI vector) unreadable. Size must be the full
	// 64 KiB.
	var b Bus
	b.Write(0xFFFF, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0xFFFF))
	assert.Equal(t, Size, 0x10000)
}
