// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"errors"
	"fmt"

	"github.com/tandygong/docval/internal/apperrors"
)

// invalidArgumentf reports a caller mistake at filter-construction or
// mutation time (spec §7: InvalidArgument).
func invalidArgumentf(format string, args ...any) error {
	return apperrors.InvalidArgument(fmt.Errorf(format, args...))
}

// internalErrorf reports a violated invariant (spec §7: Internal) -
// an unreachable branch that should have been prevented by
// construction-time validation.
func internalErrorf(format string, args ...any) error {
	return apperrors.Internal(fmt.Errorf(format, args...))
}

// IsInvalidArgument reports whether err was produced by this package as
// a caller-input validation failure.
func IsInvalidArgument(err error) bool { return apperrors.IsInvalidArgument(err) }

// IsInternal reports whether err was produced by this package as a
// violated invariant.
func IsInternal(err error) bool { return apperrors.IsInternal(err) }

var errEmptyPath = errors.New("field path must not be empty")
