package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLights(t *testing.T) {
	assert := assert.New(t)

	lights := &Lights{}
	assert.Equal(uint8(0), lights.Value())
	assert.Equal("00000000", lights.String())

	assert.NoError(SendAsUint8(lights, 8))
	assert.Equal(uint8(8), lights.Value())
	assert.Equal("00001000", lights.String())

	assert.NoError(SendAsUint8(lights, 0x81))
	assert.Equal("10000001", lights.String())

	lights.Glyphs = [2]rune{'○', '●'}
	assert.Equal("●○○○○○○●", lights.String())
}

func TestLights_Latch(t *testing.T) {
	assert := assert.New(t)

	lights := &Lights{}
	assert.NoError(SendAsUint8(lights, 0x0F))

	// Lamps hold their value until a full byte arrives.
	for range 4 {
		assert.NoError(lights.Send(false))
	}
	assert.Equal(uint8(0x0F), lights.Value())

	for range 4 {
		assert.NoError(lights.Send(true))
	}
	assert.Equal(uint8(0xF0), lights.Value())

	lights.Rewind()
	assert.Equal(uint8(0), lights.Value())
}

func TestSplitter(t *testing.T) {
	assert := assert.New(t)

	lights := &Lights{}
	buf := &bytes.Buffer{}
	tape := &Tape{Output: buf}

	sp := Splitter{lights, tape}
	assert.NoError(SendAsUint8(sp, 0x2C))
	assert.Equal(uint8(0x2C), lights.Value())
	assert.Equal([]byte{0x2C}, buf.Bytes())

	sp.Rewind()
	assert.Equal(uint8(0), lights.Value())
	assert.Equal(0, tape.Written)

	// A failing channel stops delivery to those after it.
	lights.Rewind()
	sp = Splitter{&Tape{}, lights}
	assert.ErrorIs(sp.Send(true), ErrTapeMissing)
	assert.NoError(SendAsUint8(lights, 0))
	assert.Equal(uint8(0), lights.Value())
}
