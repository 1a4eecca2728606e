// Package internal holds iterator helpers shared by the SAP-1 packages.
package internal

import (
	"iter"
)

// IterSeq2Concat yields every pair of each sequence in turn, stopping as
// soon as the consumer does.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}
