// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare is the total order over Value described in spec §4.1: values
// of different type rank compare by rank; values of the same rank
// delegate to the per-type comparator. It returns a negative number if
// a < b, zero if a == b, and a positive number if a > b.
//
// Compare treats NaN as equal to itself and less than every other
// number, so it is a genuine total order usable for sorting and
// bucketing - even though the `=` operator (see Equal) never considers
// NaN equal to anything, itself included.
func Compare(a, b Value) int {
	ra, rb := typeOrder(a), typeOrder(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch a.kind {
	case KindNull:
		return 0
	case KindBool:
		return cmp.Compare(boolRank(a.b), boolRank(b.b))
	case KindNumber:
		return compareNumber(a, b)
	case KindTimestamp:
		if c := cmp.Compare(a.sec, b.sec); c != 0 {
			return c
		}
		return cmp.Compare(a.nanos, b.nanos)
	case KindString:
		return strings.Compare(a.s, b.s)
	case KindBytes:
		return bytes.Compare(a.bytes, b.bytes)
	case KindReference:
		return strings.Compare(a.s, b.s)
	case KindGeoPoint:
		if c := cmp.Compare(a.lat, b.lat); c != 0 {
			return c
		}
		return cmp.Compare(a.lon, b.lon)
	case KindArray:
		return compareArrays(a.arr, b.arr)
	case KindMap:
		return compareMaps(a.m, b.m)
	default:
		panic(internalErrorf("Compare: unrecognized kind %d", a.kind))
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareArrays(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// compareMaps walks both entry slices in key order (they are already
// maintained sorted by Map/ObjectValue), comparing keys before values,
// and treats a map that runs out of entries first as the smaller one -
// the same rule Compare uses for arrays.
func compareMaps(a, b []MapEntry) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if c := strings.Compare(a[i].Key, b[j].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Val, b[j].Val); c != 0 {
			return c
		}
		i++
		j++
	}
	return cmp.Compare(len(a)-i, len(b)-j)
}
