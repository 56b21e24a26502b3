/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reduction provides generic left-fold utilities over slices and
// sequences, including transform-reduce variants which project every element
// before combination. Elements are always combined in ascending order so that
// non-commutative combine functions behave deterministically.
package reduction

import (
	"iter"
	"slices"

	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/field"
)

// ReduceFunc defines a reducer that combines an accumulator and a raw element to produce a new accumulator.
type ReduceFunc[E, R any] func(R, E) R

// ReduceRefFunc is similar to ReduceFunc but works on references.
type ReduceRefFunc[E, R any] func(*R, *E) *R

// TransformFunc defines the projection applied to each element before it is combined.
type TransformFunc[E, R any] func(E) R

// TransformRefFunc is similar to TransformFunc but works on references.
type TransformRefFunc[E, R any] func(*E) *R

// CombineFunc combines the running accumulator with a projected element.
type CombineFunc[R any] func(R, R) R

// IdentityTransformFunc returns a transform which leaves elements untouched.
func IdentityTransformFunc[E any]() TransformFunc[E, E] {
	return func(e E) E {
		return e
	}
}

func toReduceFunc[E, R any](f ReduceRefFunc[E, R]) ReduceFunc[E, R] {
	return func(accumulator R, e E) R {
		return field.Optional(f(field.ToOptional(accumulator), field.ToOptional(e)), accumulator)
	}
}

func toTransformFunc[E, R any](f TransformRefFunc[E, R]) TransformFunc[E, R] {
	return func(e E) (projected R) {
		return field.Optional(f(field.ToOptional(e)), projected)
	}
}

// Reduce runs a reducer function f over all elements in the slice, in ascending-index order, and accumulates them into a single value.
func Reduce[E, R any](s []E, accumulator R, f ReduceFunc[E, R]) R {
	return ReduceSequence(slices.Values(s), accumulator, f)
}

// ReduceRef is similar to Reduce but works on references.
func ReduceRef[E, R any](s []E, accumulator R, f ReduceRefFunc[E, R]) R {
	return Reduce(s, accumulator, toReduceFunc(f))
}

// ReduceSequence runs a reducer function f over all elements of a sequence, in order, and accumulates them into a single value.
// An empty sequence returns the accumulator unchanged.
func ReduceSequence[E, R any](s iter.Seq[E], accumulator R, f ReduceFunc[E, R]) (result R) {
	result = accumulator
	for e := range s {
		result = f(result, e)
	}
	return
}

// TransformReduce projects every element of the slice through transform and folds the projections
// with combine, starting from seed. The whole slice is covered, seed included only as the starting
// accumulator; an empty slice returns the seed unchanged.
func TransformReduce[E, R any](s []E, seed R, combine CombineFunc[R], transform TransformFunc[E, R]) R {
	return TransformReduceSequence(slices.Values(s), seed, combine, transform)
}

// TransformReduceRef is similar to TransformReduce but works on references.
func TransformReduceRef[E, R any](s []E, seed R, combine CombineFunc[R], transform TransformRefFunc[E, R]) R {
	return TransformReduce(s, seed, combine, toTransformFunc(transform))
}

// TransformReduceSequence is similar to TransformReduce but operates on a sequence.
func TransformReduceSequence[E, R any](s iter.Seq[E], seed R, combine CombineFunc[R], transform TransformFunc[E, R]) (result R) {
	result = seed
	for e := range s {
		result = combine(result, transform(e))
	}
	return
}

// TransformReduceFromFirst folds the slice with combine using the raw first element as the seed:
// combination starts from the second element onwards and no projection is applied.
// It fails with ErrEmpty when the slice has no element to seed from.
func TransformReduceFromFirst[E any](s []E, combine CombineFunc[E]) (E, error) {
	return TransformReduceFromFirstSequence(slices.Values(s), combine)
}

// TransformReduceFromFirstSequence is similar to TransformReduceFromFirst but operates on a sequence.
func TransformReduceFromFirstSequence[E any](s iter.Seq[E], combine CombineFunc[E]) (result E, err error) {
	if s == nil {
		err = commonerrors.UndefinedParameter("sequence")
		return
	}
	seeded := false
	for e := range s {
		if !seeded {
			result = e
			seeded = true
			continue
		}
		result = combine(result, e)
	}
	if !seeded {
		err = commonerrors.New(commonerrors.ErrEmpty, "a fold cannot be seeded from an empty sequence")
	}
	return
}

// TransformReduceFromFirstProjected is similar to TransformReduceFromFirst but also passes the
// seeding element through transform, for callers wanting every element projected consistently.
func TransformReduceFromFirstProjected[E, R any](s []E, combine CombineFunc[R], transform TransformFunc[E, R]) (R, error) {
	return TransformReduceFromFirstProjectedSequence(slices.Values(s), combine, transform)
}

// TransformReduceFromFirstProjectedSequence is similar to TransformReduceFromFirstProjected but operates on a sequence.
func TransformReduceFromFirstProjectedSequence[E, R any](s iter.Seq[E], combine CombineFunc[R], transform TransformFunc[E, R]) (result R, err error) {
	if s == nil {
		err = commonerrors.UndefinedParameter("sequence")
		return
	}
	seeded := false
	for e := range s {
		if !seeded {
			result = transform(e)
			seeded = true
			continue
		}
		result = combine(result, transform(e))
	}
	if !seeded {
		err = commonerrors.New(commonerrors.ErrEmpty, "a fold cannot be seeded from an empty sequence")
	}
	return
}
