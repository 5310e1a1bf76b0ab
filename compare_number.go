// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"cmp"
	"math/big"
)

// compareNumber implements the three-way numeric comparator from spec
// §4.1: same-representation comparisons are cheap, the mixed
// int/double case goes through exact arbitrary-precision arithmetic so
// that integers beyond 2^53 are never silently rounded by a float64
// conversion.
//
// cmp.Compare on float64 already gives us the total order spec §4.1
// asks for: NaN sorts below every other double and is equal only to
// itself, and -0.0 compares equal to 0.0.
func compareNumber(a, b Value) int {
	switch {
	case a.numKind == numberInt && b.numKind == numberInt:
		return cmp.Compare(a.i, b.i)
	case a.numKind == numberDouble && b.numKind == numberDouble:
		return cmp.Compare(a.f, b.f)
	case a.numKind == numberInt:
		return compareIntDouble(a.i, b.f)
	default:
		return -compareIntDouble(b.i, a.f)
	}
}

// compareIntDouble returns the sign of (i - d). For |i| within the
// float64 mantissa's exact integer range this could be done with a
// simple float64 conversion, but the mixed comparator must stay exact
// past 2^53 (spec §4.1, §9 "Mixed comparator"), so it always goes
// through math/big rather than branching on magnitude: big.Float holds
// i exactly and holds d exactly (float64 is already its native
// representation), so the comparison is exact everywhere.
func compareIntDouble(i int64, d float64) int {
	if d != d { // NaN
		// NaN sorts below every number (§4.1); i is always the greater.
		return 1
	}
	bi := new(big.Float).SetInt64(i)
	bd := big.NewFloat(d)
	return bi.Cmp(bd)
}
