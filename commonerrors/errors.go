/*
 * Copyright (C) 2026 Foldkit Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy used across foldkit so that
// callers can act on error types using errors.Is rather than string matching.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmpty     = errors.New("empty")
	ErrUndefined = errors.New("undefined")
	ErrInvalid   = errors.New("invalid")
	ErrCancelled = errors.New("cancelled")
	ErrTimeout   = errors.New("timeout")
)

// Any returns whether the target error matches any of the errors provided.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None returns whether the target error matches none of the errors provided.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// New returns a new error of type `targetErr` with a description.
func New(targetErr error, description string) error {
	return fmt.Errorf("%w: %v", targetErr, description)
}

// Newf returns a new error of type `targetErr` with a formatted description.
func Newf(targetErr error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", targetErr, fmt.Sprintf(format, args...))
}

// Ignore returns nil if the error matches any of the errors to ignore,
// or else returns the error unchanged.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// Join aggregates multiple errors into one, discarding nil entries.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// CorrespondTo determines whether the error description contains any of the
// descriptions provided (case insensitive).
func CorrespondTo(target error, descriptions ...string) bool {
	if target == nil {
		return false
	}
	errStr := strings.ToLower(target.Error())
	for _, d := range descriptions {
		if strings.Contains(errStr, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// UndefinedParameter returns an ErrUndefined error with a description of the
// missing parameter.
func UndefinedParameter(description string) error {
	return New(ErrUndefined, description)
}
