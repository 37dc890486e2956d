// Package internal holds helpers shared by the lmc packages.
package internal

import (
	"iter"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Sorted yields the pairs of seq ordered by cmp.
func IterSeq2Sorted[T1 any, T2 any](seq iter.Seq2[T1, T2], cmp func(a1 T1, a2 T2, b1 T1, b2 T2) int) iter.Seq2[T1, T2] {
	type pair struct {
		v1 T1
		v2 T2
	}

	return func(yield func(T1, T2) bool) {
		var pairs []pair
		for v1, v2 := range seq {
			pairs = append(pairs, pair{v1, v2})
		}
		slices.SortStableFunc(pairs, func(a, b pair) int {
			return cmp(a.v1, a.v2, b.v1, b.v2)
		})
		for _, p := range pairs {
			if !yield(p.v1, p.v2) {
				return
			}
		}
	}
}
