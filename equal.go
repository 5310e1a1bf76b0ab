// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

// Equal implements the equivalence used by the `=` operator and by `in`
// / `array-contains` / `array-contains-any` (spec §4.5, §4.1): identical
// to Compare(a, b) == 0 except that a NaN double is never equal to
// anything, including another NaN.
//
// This is deliberately a different relation from the one Compare
// induces: Compare treats NaN as equal to itself so that it can be
// totally ordered for sorting and bucketing, while Equal must satisfy
// "whereEqualTo(NaN) rejects all documents" (spec §4.1).
func Equal(a, b Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return Compare(a, b) == 0
}
