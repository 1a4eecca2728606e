package io

import (
	"iter"
)

const (
	LIGHTS_COUNT = 8 // Indicator lamps on the output register.
)

// Lights models the eight indicator lamps wired to the output register.
// The lamps change only once a complete byte has been received.
type Lights struct {
	Glyphs [2]rune // Glyphs for an unlit and a lit lamp, '0' and '1' if unset.

	lamps uint8
	next  uint8
	index int
}

// Rewind turns all lamps off.
func (lc *Lights) Rewind() {
	lc.lamps = 0
	lc.next = 0
	lc.index = 0
}

// Send receives a bit, LSB first, latching the lamps after every eighth.
func (lc *Lights) Send(value bool) (err error) {
	if value {
		lc.next |= 1 << lc.index
	}

	lc.index++
	if lc.index == LIGHTS_COUNT {
		lc.lamps = lc.next
		lc.next = 0
		lc.index = 0
	}

	return
}

// Receive yields the lit state of each lamp, LSB first.
func (lc *Lights) Receive() iter.Seq[bool] {
	return func(yield func(value bool) bool) {
		for n := range LIGHTS_COUNT {
			if !yield(((lc.lamps >> n) & 1) == 1) {
				return
			}
		}
	}
}

// Value returns the byte currently displayed.
func (lc *Lights) Value() uint8 {
	return lc.lamps
}

// String renders the lamps MSB first, as read left to right on the panel.
func (lc *Lights) String() string {
	glyphs := lc.Glyphs
	if glyphs == [2]rune{} {
		glyphs = [2]rune{'0', '1'}
	}

	text := make([]rune, LIGHTS_COUNT)
	for n := range LIGHTS_COUNT {
		bit := (lc.lamps >> (LIGHTS_COUNT - 1 - n)) & 1
		text[n] = glyphs[bit]
	}

	return string(text)
}
