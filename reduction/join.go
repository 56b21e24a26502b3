/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reduction

import (
	"iter"
	"slices"
)

//
// Join utilities
//

// Join concatenates the elements of s in order, inserting sep between adjacent pairs.
// It is implemented as a self-seeding fold and therefore fails with ErrEmpty when s
// has no elements; a single-element slice returns that element unchanged.
func Join(s []string, sep string) (string, error) {
	return JoinSequence(slices.Values(s), sep)
}

// JoinSequence is similar to Join but operates on a sequence.
func JoinSequence(s iter.Seq[string], sep string) (string, error) {
	return TransformReduceFromFirstSequence(s, func(a, b string) string {
		return a + sep + b
	})
}
