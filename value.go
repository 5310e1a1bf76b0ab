// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import "sort"

// Kind tags the ten variants a Value can take. The declaration order
// below matches the cross-type rank, but comparison always ranks values
// through typeOrder rather than through Kind's numeric value.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindTimestamp
	KindString
	KindBytes
	KindReference
	KindGeoPoint
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindTimestamp:
		return "timestamp"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindReference:
		return "reference"
	case KindGeoPoint:
		return "geopoint"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// numberKind distinguishes the two representations that share the
// Number rank (§3: "integers and doubles share a rank").
type numberKind byte

const (
	numberInt numberKind = iota
	numberDouble
)

// MapEntry is one field of a Map value, always stored and iterated in
// key order (§4.1: "Map: iterate both sides in key-sorted order").
type MapEntry struct {
	Key string
	Val Value
}

// Value is the tagged union described in spec §3: exactly one of ten
// variants, with no "unset" state. The zero Value is KindNull.
type Value struct {
	kind Kind

	numKind numberKind
	i       int64
	f       float64

	sec   int64
	nanos int32

	b bool
	s string // String and Reference payload

	bytes []byte

	lat, lon float64

	arr []Value
	m   []MapEntry // sorted by Key, unique keys
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Number value.
func Int(i int64) Value { return Value{kind: KindNumber, numKind: numberInt, i: i} }

// Double returns a floating-point Number value. NaN is permitted.
func Double(f float64) Value { return Value{kind: KindNumber, numKind: numberDouble, f: f} }

// Timestamp returns a Timestamp value. nanos must be in [0, 1e9); the
// caller (the wire codec) is trusted to have normalized it.
func Timestamp(seconds int64, nanos int32) Value {
	return Value{kind: KindTimestamp, sec: seconds, nanos: nanos}
}

// String returns a String value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes returns a Bytes value. The slice is copied.
func Bytes(b []byte) Value {
	cp := append([]byte(nil), b...)
	return Value{kind: KindBytes, bytes: cp}
}

// Reference returns a Reference value holding a canonical resource
// path string.
func Reference(path string) Value { return Value{kind: KindReference, s: path} }

// GeoPoint returns a GeoPoint value.
func GeoPoint(lat, lon float64) Value {
	return Value{kind: KindGeoPoint, lat: lat, lon: lon}
}

// Array returns an Array value. Element order is significant and
// duplicates are allowed. The slice is copied.
func Array(elems ...Value) Value {
	cp := append([]Value(nil), elems...)
	return Value{kind: KindArray, arr: cp}
}

// Map returns a Map value built from fields. Keys must be unique;
// iteration order is always key-sorted regardless of the order fields
// were supplied in.
func Map(fields map[string]Value) Value {
	entries := make([]MapEntry, 0, len(fields))
	for k, v := range fields {
		entries = append(entries, MapEntry{Key: k, Val: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return Value{kind: KindMap, m: entries}
}

// mapFromSortedEntries builds a Map value from entries already known to
// be sorted and unique, skipping the re-sort in Map. Used internally by
// ObjectValue, which maintains the invariant itself.
func mapFromSortedEntries(entries []MapEntry) Value {
	return Value{kind: KindMap, m: entries}
}

// Kind reports which of the ten variants v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsInt reports whether v is a Number holding an integer.
func (v Value) IsInt() bool { return v.kind == KindNumber && v.numKind == numberInt }

// IsDouble reports whether v is a Number holding a double.
func (v Value) IsDouble() bool { return v.kind == KindNumber && v.numKind == numberDouble }

// IsNaN reports whether v is a double Number holding NaN.
func (v Value) IsNaN() bool { return v.IsDouble() && v.f != v.f }

// Bool returns v's boolean payload. It performs no validation; callers
// that don't already know v is KindBool should check Kind first.
func (v Value) Bool() bool { return v.b }

// Int64 returns v's integer payload, converting from double if needed
// by truncation. Callers that must distinguish integer from double
// storage should check IsInt/IsDouble first.
func (v Value) Int64() int64 {
	if v.numKind == numberDouble {
		return int64(v.f)
	}
	return v.i
}

// Float64 returns v's numeric payload as a float64, widening from
// integer if needed.
func (v Value) Float64() float64 {
	if v.numKind == numberDouble {
		return v.f
	}
	return float64(v.i)
}

// Timestamp returns v's seconds and nanoseconds payload.
func (v Value) Timestamp() (seconds int64, nanos int32) { return v.sec, v.nanos }

// StringValue returns v's string payload (for both KindString and
// KindReference).
func (v Value) StringValue() string { return v.s }

// BytesValue returns v's byte payload. The returned slice must not be
// mutated.
func (v Value) BytesValue() []byte { return v.bytes }

// GeoPoint returns v's latitude and longitude.
func (v Value) GeoPoint() (lat, lon float64) { return v.lat, v.lon }

// Elements returns v's array elements. The returned slice must not be
// mutated.
func (v Value) Elements() []Value { return v.arr }

// Fields returns v's map entries in key order. The returned slice must
// not be mutated.
func (v Value) Fields() []MapEntry { return v.m }

// Field looks up a single top-level key in a Map value.
func (v Value) Field(key string) (Value, bool) {
	lo, hi := 0, len(v.m)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case v.m[mid].Key < key:
			lo = mid + 1
		case v.m[mid].Key > key:
			hi = mid
		default:
			return v.m[mid].Val, true
		}
	}
	return Value{}, false
}
