/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reduction

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

//
// Summation utilities
//

// Sum returns the summation of all the elements in the slice, starting from the zero value.
func Sum[S ~[]E, E constraints.Ordered](s S) E {
	return SumSequence(slices.Values(s))
}

// SumSequence is similar to Sum but operates on a sequence.
func SumSequence[E constraints.Ordered](s iter.Seq[E]) (total E) {
	return TransformReduceSequence(s, total, func(a, b E) E { return a + b }, IdentityTransformFunc[E]())
}

// SumLengths returns the total number of bytes across all the strings in the slice.
// An empty or nil slice sums to zero.
func SumLengths(s []string) int {
	return SumLengthsSequence(slices.Values(s))
}

// SumLengthsSequence is similar to SumLengths but operates on a sequence.
func SumLengthsSequence(s iter.Seq[string]) int {
	return TransformReduceSequence(s, 0, func(a, b int) int { return a + b }, func(e string) int { return len(e) })
}
