package io

import (
	"iter"
)

// SendAsUint8 sends an 8-bit unsigned integer as 8 bits to the channel,
// LSB first.
func SendAsUint8(ch Channel, value uint8) (err error) {
	for n := range 8 {
		err = ch.Send(((value >> n) & 1) == 1)
		if err != nil {
			return
		}
	}
	return
}

// ReceiveAsUint8 returns an iterator that reads bits from the receiver and
// yields complete 8-bit unsigned integers, LSB first.
func ReceiveAsUint8(rc Receiver) iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		var n int
		var value uint8
		for bit := range rc.Receive() {
			if bit {
				value |= (1 << n)
			}
			if n == 7 {
				if !yield(value) {
					return
				}
				value = 0
				n = 0
			} else {
				n++
			}
		}
		if n != 0 {
			yield(value)
		}
	}
}
