package io

import (
	"io"
)

// Tape records the output register to a byte stream. Bits are buffered
// until a complete byte is assembled, then the byte is written.
type Tape struct {
	Output io.Writer

	Written int // Bytes written since the last rewind.

	nextOutput byte
	writeIndex int
}

// Rewind drops any partially assembled byte. Bytes already written stay
// written, as a tape cannot be rewound.
func (tc *Tape) Rewind() {
	tc.nextOutput = 0
	tc.writeIndex = 0
	tc.Written = 0
}

// Send writes a bit to the output stream, buffering bits until a complete
// byte is assembled, then writing it.
func (tc *Tape) Send(value bool) (err error) {
	if tc.Output == nil {
		err = ErrTapeMissing
		return
	}

	if value {
		tc.nextOutput |= 1 << tc.writeIndex
	}

	tc.writeIndex++

	if tc.writeIndex == 8 {
		data := tc.nextOutput
		tc.nextOutput = 0
		tc.writeIndex = 0
		_, err = tc.Output.Write([]byte{data})
		if err != nil {
			return
		}
		tc.Written++
	}

	return
}
