// Package io provides the output devices driven by the SAP-1 output
// register. Devices are bit-level channels: the emulator sends each output
// byte LSB first, and a device latches it once all eight bits arrive.
package io

import (
	"iter"
)

// Channel defines the interface for all output channels.
type Channel interface {
	// Rewind discards any partially received byte and restores the
	// channel to its initial state.
	Rewind()
	// Send writes a single bit to the channel.
	Send(value bool) error
}

// Receiver is a channel whose latched contents can be read back.
type Receiver interface {
	// Receive returns an iterator that yields bits from the channel.
	Receive() iter.Seq[bool]
}

// Splitter fans every bit out to each of its channels, in order.
type Splitter []Channel

// Rewind rewinds all channels.
func (sp Splitter) Rewind() {
	for _, ch := range sp {
		ch.Rewind()
	}
}

// Send sends the bit to all channels, stopping at the first error.
func (sp Splitter) Send(value bool) (err error) {
	for _, ch := range sp {
		err = ch.Send(value)
		if err != nil {
			return
		}
	}
	return
}
