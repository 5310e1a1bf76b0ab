// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash implements the hashing contract from spec §6: consistent with
// Compare's equivalence (a == b under Compare implies equal hashes),
// not with Equal's `=` semantics - a NaN double hashes to its IEEE bit
// pattern like any other double, even though Equal(NaN, NaN) is false.
//
// Strings, references and bytes are hashed with xxhash rather than a
// hand-rolled mix, the same choice the wider retrieved pack makes for
// content hashing; composite kinds (array, map) fold their elements'
// hashes with the 31*acc+h mixing rule spec §6 specifies.
func Hash(v Value) uint64 {
	switch v.kind {
	case KindNull:
		return hashSeedNull
	case KindBool:
		if v.b {
			return hashSeedBool + 1
		}
		return hashSeedBool
	case KindNumber:
		return hashNumber(v)
	case KindTimestamp:
		return mix(mix(hashSeedTimestamp, uint64(v.sec)), uint64(uint32(v.nanos)))
	case KindString:
		return xxhash.Sum64String(v.s)
	case KindReference:
		return mix(hashSeedReference, xxhash.Sum64String(v.s))
	case KindBytes:
		return xxhash.Sum64(v.bytes)
	case KindGeoPoint:
		return mix(hashFloat64(v.lat), hashFloat64(v.lon))
	case KindArray:
		acc := hashSeedArray
		for _, e := range v.arr {
			acc = mix(acc, Hash(e))
		}
		return acc
	case KindMap:
		acc := hashSeedMap
		for _, e := range v.m {
			acc = mix(acc, xxhash.Sum64String(e.Key))
			acc = mix(acc, Hash(e.Val))
		}
		return acc
	default:
		panic(internalErrorf("Hash: unrecognized kind %d", v.kind))
	}
}

const (
	hashSeedNull = iota + 1
	hashSeedBool
	hashSeedTimestamp
	hashSeedReference
	hashSeedArray
	hashSeedMap
)

func mix(acc, h uint64) uint64 { return 31*acc + h }

// hashNumber folds an integer-valued double within int64's range onto
// the same hash as the equivalent int64 Number, so that Int(5) and
// Double(5.0) - which Compare treats as equal - also hash equally. Such
// a double converts to int64 exactly, so this holds past 2^53 as well;
// every other double hashes by its bit pattern.
func hashNumber(v Value) uint64 {
	if v.numKind == numberInt {
		return hashIntegerValue(v.i)
	}
	f := v.f
	if f == math.Trunc(f) && f >= math.MinInt64 && f < 1<<63 {
		return hashIntegerValue(int64(f))
	}
	return hashFloat64(f)
}

func hashIntegerValue(i int64) uint64 { return uint64(i) }

// hashFloat64 normalizes -0.0 to 0.0 before taking the bit pattern so
// that Hash(-0.0) == Hash(0.0), matching Compare treating them equal.
func hashFloat64(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}
