package io

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bitChannel records sent bits, and replays them on receive.
type bitChannel struct {
	bits     []bool
	failAt   int // Fail the send of this bit, when non-zero.
	receives int
}

func (bc *bitChannel) Rewind() {
	bc.bits = nil
}

func (bc *bitChannel) Send(value bool) error {
	if bc.failAt != 0 && len(bc.bits)+1 == bc.failAt {
		return ErrTapeMissing
	}
	bc.bits = append(bc.bits, value)
	return nil
}

func (bc *bitChannel) Receive() iter.Seq[bool] {
	bc.receives++
	return slices.Values(bc.bits)
}

func bitsOf(text string) (bits []bool) {
	for _, c := range text {
		bits = append(bits, c == '1')
	}
	return
}

func TestSendAsUint8(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value uint8
		bits  string // LSB first
	}){
		{0x00, "00000000"},
		{0xFF, "11111111"},
		{0x01, "10000000"},
		{0x80, "00000001"},
		{0x08, "00010000"},
		{0x2C, "00110100"},
	}

	for _, entry := range table {
		bc := &bitChannel{}
		assert.NoError(SendAsUint8(bc, entry.value))
		assert.Equal(bitsOf(entry.bits), bc.bits, entry.bits)
	}
}

func TestSendAsUint8_Error(t *testing.T) {
	assert := assert.New(t)

	bc := &bitChannel{failAt: 3}
	assert.ErrorIs(SendAsUint8(bc, 0xFF), ErrTapeMissing)
	assert.Equal(2, len(bc.bits))
}

func TestReceiveAsUint8(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		bits   string
		values []uint8
	}){
		{"", nil},
		{"00010000", []uint8{8}},
		{"0001000000110100", []uint8{8, 44}},
		{"11", []uint8{3}},
	}

	for _, entry := range table {
		bc := &bitChannel{bits: bitsOf(entry.bits)}
		assert.Equal(entry.values, slices.Collect(ReceiveAsUint8(bc)), entry.bits)
	}

	// Stopping early leaves the rest unread.
	bc := &bitChannel{bits: bitsOf("0001000000110100")}
	for value := range ReceiveAsUint8(bc) {
		assert.Equal(uint8(8), value)
		break
	}
	assert.Equal(1, bc.receives)
}

func TestAsUint8_Lights(t *testing.T) {
	assert := assert.New(t)

	lights := &Lights{}
	for _, value := range []uint8{0, 1, 0x80, 0xA5, 0xFF} {
		assert.NoError(SendAsUint8(lights, value))
		assert.Equal([]uint8{value}, slices.Collect(ReceiveAsUint8(lights)))
	}
}
