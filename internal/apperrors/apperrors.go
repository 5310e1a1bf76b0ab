// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package apperrors classifies the errors this module can return into the
// two kinds the value model distinguishes: a caller mistake at
// construction time, or an invariant violation that should never happen
// at runtime. The shape follows moby/moby's errdefs package: a marker
// interface per kind, an errors.As-compatible wrapper, and an Is* helper
// built on top of it, so a kind survives fmt.Errorf wrapping and
// errors.Join the same way a sentinel error would.
package apperrors

import "errors"

type invalidArgument struct{ error }

func (invalidArgument) InvalidArgument() {}
func (e invalidArgument) Cause() error  { return e.error }
func (e invalidArgument) Unwrap() error { return e.error }

type internal struct{ error }

func (internal) Internal() {}
func (e internal) Cause() error  { return e.error }
func (e internal) Unwrap() error { return e.error }

// InvalidArgument wraps err as a caller-input validation failure: a bad
// operator/bound combination, a null or NaN bound on an operator that
// doesn't support one, array-contains on the key field, or a mutation
// on an empty FieldPath.
func InvalidArgument(err error) error { return invalidArgument{err} }

// Internal wraps err as a violated invariant: an unreachable type rank,
// a VALUETYPE_NOT_SET from the codec, an iterator advanced past
// exhaustion. Callers should treat it as a bug, not a retryable failure.
func Internal(err error) error { return internal{err} }

type invalidArgumenter interface{ InvalidArgument() }

type internaler interface{ Internal() }

// IsInvalidArgument reports whether err, or anything it wraps or joins,
// was produced by InvalidArgument.
func IsInvalidArgument(err error) bool {
	var e invalidArgumenter
	return errors.As(err, &e)
}

// IsInternal reports whether err, or anything it wraps or joins, was
// produced by Internal.
func IsInternal(err error) bool {
	var e internaler
	return errors.As(err, &e)
}
