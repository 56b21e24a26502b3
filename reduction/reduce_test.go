/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reduction

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/commonerrors/errortest"
	"github.com/foldkit/foldkit/field"
)

func TestReduce(t *testing.T) {
	assert.Equal(t, 10, Reduce([]int{1, 2, 3, 4}, 0, func(acc, e int) int { return acc + e }))
	assert.Equal(t, 42, Reduce(nil, 42, func(acc, e int) int { return acc + e }))
	assert.Equal(t, "seed-a-b", Reduce([]string{"a", "b"}, "seed", func(acc, e string) string { return acc + "-" + e }))
}

func TestReduceRef(t *testing.T) {
	result := ReduceRef([]int{1, 2, 3}, 0, func(acc *int, e *int) *int {
		return field.ToOptional(field.Optional(acc, 0) + field.Optional(e, 0))
	})
	assert.Equal(t, 6, result)
	// A reducer returning nil keeps the previous accumulator.
	result = ReduceRef([]int{1, 2, 3}, 5, func(_ *int, _ *int) *int { return nil })
	assert.Equal(t, 5, result)
}

func TestReduceSequence(t *testing.T) {
	words := []string{faker.Word(), faker.Word(), faker.Word(), faker.Word()}
	expected := 0
	for i := range words {
		expected += len(words[i])
	}
	total := ReduceSequence(slices.Values(words), 0, func(acc int, e string) int { return acc + len(e) })
	assert.Equal(t, expected, total)
}

func TestTransformReduce(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	quote := func(e string) string { return fmt.Sprintf("[%v]", e) }

	assert.Equal(t, "[a][b][c]", TransformReduce([]string{"a", "b", "c"}, "", concat, quote))
	assert.Equal(t, "unchanged", TransformReduce(nil, "unchanged", concat, quote))
	assert.Equal(t, 11, TransformReduce([]string{"C++", "is", "insane"}, 0, func(a, b int) int { return a + b }, func(e string) int { return len(e) }))
}

func TestTransformReduceOrdering(t *testing.T) {
	// Concatenation is not commutative: any combination order other than
	// ascending-index would produce a different string.
	result := TransformReduce([]string{"C++", "is", "insane"}, "", func(a, b string) string {
		if a == "" {
			return b
		}
		return a + "-" + b
	}, IdentityTransformFunc[string]())
	assert.Equal(t, "C++-is-insane", result)
}

func TestTransformReduceRef(t *testing.T) {
	total := TransformReduceRef([]string{"ab", "cde"}, 0, func(a, b int) int { return a + b }, func(e *string) *int {
		return field.ToOptional(len(field.Optional(e, "")))
	})
	assert.Equal(t, 5, total)
}

func TestTransformReduceFromFirst(t *testing.T) {
	dashed := func(a, b string) string { return a + "-" + b }

	result, err := TransformReduceFromFirst([]string{"C++", "is", "insane"}, dashed)
	require.NoError(t, err)
	assert.Equal(t, "C++-is-insane", result)

	// The seed is consumed as-is and folding starts from the second element.
	result, err = TransformReduceFromFirst([]string{"only"}, dashed)
	require.NoError(t, err)
	assert.Equal(t, "only", result)
}

func TestTransformReduceFromFirstEmpty(t *testing.T) {
	_, err := TransformReduceFromFirst([]string{}, func(a, b string) string { return a + b })
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrEmpty)

	_, err = TransformReduceFromFirstSequence[string](nil, func(a, b string) string { return a + b })
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestTransformReduceFromFirstProjected(t *testing.T) {
	lengths, err := TransformReduceFromFirstProjected([]string{"C++", "is", "insane"}, func(a, b int) int { return a + b }, func(e string) int { return len(e) })
	require.NoError(t, err)
	assert.Equal(t, 11, lengths)

	// Unlike TransformReduceFromFirst, the seeding element goes through the transform too.
	quoted, err := TransformReduceFromFirstProjected([]string{"a", "b"}, func(a, b string) string { return a + b }, func(e string) string { return "[" + e + "]" })
	require.NoError(t, err)
	assert.Equal(t, "[a][b]", quoted)

	_, err = TransformReduceFromFirstProjected([]string{}, func(a, b int) int { return a + b }, func(e string) int { return len(e) })
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
}

func TestTransformReduceRandomised(t *testing.T) {
	words := []string{faker.Word(), faker.Word(), faker.Word(), faker.Word(), faker.Word()}
	expected := 0
	for i := range words {
		expected += len(words[i])
	}
	assert.Equal(t, expected, TransformReduce(words, 0, func(a, b int) int { return a + b }, func(e string) int { return len(e) }))
}
