// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"strconv"
	"strings"
)

// Operator is one of the eight comparison/containment operators a
// Filter can evaluate (spec §4.5).
type Operator byte

const (
	LessThan Operator = iota
	LessThanOrEqual
	EqualTo
	GreaterThan
	GreaterThanOrEqual
	In
	ArrayContains
	ArrayContainsAny
)

// symbol returns the short token CanonicalID embeds for this operator.
func (op Operator) symbol() string {
	switch op {
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case EqualTo:
		return "="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	case In:
		return "in"
	case ArrayContains:
		return "array-contains"
	case ArrayContainsAny:
		return "array-contains-any"
	default:
		return "?"
	}
}

// String returns op's symbol, the same token used in CanonicalID.
func (op Operator) String() string { return op.symbol() }

// IsInequality reports whether op is one of <, <=, >, >= (spec §4.5,
// §6).
func (op Operator) IsInequality() bool {
	switch op {
	case LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual:
		return true
	default:
		return false
	}
}

// filterVariant is the tag spec §9 asks for: "a single Filter sum with
// variants {Field, Key, KeyIn, ArrayContains, ArrayContainsAny, In}",
// made part of equality per the resolved Open Question (recommendation
// (a): two Filters are equal only when their variant, field, operator
// and bound all match).
type filterVariant byte

const (
	variantField filterVariant = iota
	variantKey
	variantKeyIn
	variantArrayContains
	variantArrayContainsAny
	variantIn
)

// Filter is a single (field, operator, bound) predicate, routed at
// construction time to one of six variants (spec §4.5). The zero Filter
// is not valid; construct with NewFilter.
type Filter struct {
	variant filterVariant
	field   FieldPath
	op      Operator
	bound   Value
}

// NewFilter validates (field, op, bound) and routes it to the correct
// variant, per the construction rules in spec §4.5. It returns an
// InvalidArgument error (see IsInvalidArgument) for every rule
// violation spec §7 lists.
func NewFilter(field FieldPath, op Operator, bound Value) (Filter, error) {
	if field.IsKeyField() {
		return newKeyFilter(field, op, bound)
	}

	if bound.IsNull() {
		if op != EqualTo {
			return Filter{}, invalidArgumentf("docval: null bound only supports =, got %s", op.symbol())
		}
		return Filter{variant: variantField, field: field, op: op, bound: bound}, nil
	}

	if bound.IsNaN() {
		if op != EqualTo {
			return Filter{}, invalidArgumentf("docval: NaN bound only supports =, got %s", op.symbol())
		}
		return Filter{variant: variantField, field: field, op: op, bound: bound}, nil
	}

	switch op {
	case ArrayContains:
		return Filter{variant: variantArrayContains, field: field, op: op, bound: bound}, nil
	case ArrayContainsAny:
		if bound.Kind() != KindArray {
			return Filter{}, invalidArgumentf("docval: array-contains-any requires an array bound, got %s", bound.Kind())
		}
		return Filter{variant: variantArrayContainsAny, field: field, op: op, bound: bound}, nil
	case In:
		if bound.Kind() != KindArray {
			return Filter{}, invalidArgumentf("docval: in requires an array bound, got %s", bound.Kind())
		}
		return Filter{variant: variantIn, field: field, op: op, bound: bound}, nil
	case LessThan, LessThanOrEqual, EqualTo, GreaterThan, GreaterThanOrEqual:
		return Filter{variant: variantField, field: field, op: op, bound: bound}, nil
	default:
		return Filter{}, invalidArgumentf("docval: unsupported operator %v", op)
	}
}

func newKeyFilter(field FieldPath, op Operator, bound Value) (Filter, error) {
	switch op {
	case In:
		if bound.Kind() != KindArray {
			return Filter{}, invalidArgumentf("docval: in on the key field requires an array bound, got %s", bound.Kind())
		}
		return Filter{variant: variantKeyIn, field: field, op: op, bound: bound}, nil
	case ArrayContains, ArrayContainsAny:
		return Filter{}, invalidArgumentf("docval: %s is not allowed on the key field", op.symbol())
	default:
		if bound.Kind() != KindReference {
			return Filter{}, invalidArgumentf("docval: key field filter requires a reference bound, got %s", bound.Kind())
		}
		return Filter{variant: variantKey, field: field, op: op, bound: bound}, nil
	}
}

// Field returns the filter's field path.
func (f Filter) Field() FieldPath { return f.field }

// Operator returns the filter's operator.
func (f Filter) Operator() Operator { return f.op }

// Bound returns the filter's bound value.
func (f Filter) Bound() Value { return f.bound }

// IsInequality reports whether the filter's operator is one of
// <, <=, >, >=.
func (f Filter) IsInequality() bool { return f.op.IsInequality() }

// Matches reports whether doc satisfies the filter (spec §4.5).
func (f Filter) Matches(doc Document) bool {
	v, ok := doc.GetField(f.field)
	if !ok {
		return false
	}

	switch f.variant {
	case variantKeyIn, variantIn:
		for _, e := range f.bound.Elements() {
			if Equal(v, e) {
				return true
			}
		}
		return false
	case variantArrayContains:
		if v.Kind() != KindArray {
			return false
		}
		for _, e := range v.Elements() {
			if Equal(e, f.bound) {
				return true
			}
		}
		return false
	case variantArrayContainsAny:
		if v.Kind() != KindArray {
			return false
		}
		for _, e := range v.Elements() {
			for _, b := range f.bound.Elements() {
				if Equal(e, b) {
					return true
				}
			}
		}
		return false
	case variantKey:
		return evalRelational(f.op, v, f.bound)
	default: // variantField
		if f.bound.IsNull() {
			return v.IsNull()
		}
		if f.bound.IsNaN() {
			return v.IsNaN()
		}
		// Cross-type inequality never matches (spec §4.5).
		if typeOrder(v) != typeOrder(f.bound) {
			return false
		}
		return evalRelational(f.op, v, f.bound)
	}
}

func evalRelational(op Operator, v, bound Value) bool {
	switch op {
	case LessThan:
		return Compare(v, bound) < 0
	case LessThanOrEqual:
		return Compare(v, bound) <= 0
	case EqualTo:
		return Equal(v, bound)
	case GreaterThan:
		return Compare(v, bound) > 0
	case GreaterThanOrEqual:
		return Compare(v, bound) >= 0
	default:
		panic(internalErrorf("evalRelational: unsupported operator %v", op))
	}
}

// CanonicalID returns a string identifying (field, operator, bound)
// that filters built from the same field, operator and bound always
// produce identically, suitable for caller-side query deduplication
// (spec §4.5, §6). Numbers are written in their own representation, so
// filters that Filter.Equal reports equal, such as bounds Int(0) and
// Double(-0.0), can still produce different IDs. Per the resolved
// Open Question in spec §9, the bound's type rank is folded into every
// nested value, not just the top level, so e.g. the string "1" and the
// integer 1 never collide regardless of where they appear (as the
// bound itself, or as an array/map element of it).
func (f Filter) CanonicalID() string {
	var b strings.Builder
	b.WriteString(f.field.String())
	b.WriteString(f.op.symbol())
	writeCanonicalValue(&b, f.bound)
	return b.String()
}

// Equal reports whether f and other are the same variant with equal
// field, operator and bound (spec §9 Open Question, resolved as
// recommendation (a): the variant tag is part of equality).
func (f Filter) Equal(other Filter) bool {
	return f.variant == other.variant &&
		f.op == other.op &&
		f.field.Equal(other.field) &&
		Equal(f.bound, other.bound)
}

func writeCanonicalValue(b *strings.Builder, v Value) {
	b.WriteString(strconv.Itoa(typeOrder(v)))
	b.WriteByte(':')
	switch v.Kind() {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case KindNumber:
		if v.IsInt() {
			b.WriteString(strconv.FormatInt(v.Int64(), 10))
		} else {
			b.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
		}
	case KindTimestamp:
		sec, nanos := v.Timestamp()
		b.WriteString(strconv.FormatInt(sec, 10))
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(int64(nanos), 10))
	case KindString:
		b.WriteString(strconv.Quote(v.StringValue()))
	case KindBytes:
		b.WriteString(strconv.Quote(string(v.BytesValue())))
	case KindReference:
		b.WriteString(v.StringValue())
	case KindGeoPoint:
		lat, lon := v.GeoPoint()
		b.WriteString(strconv.FormatFloat(lat, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(lon, 'g', -1, 64))
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.Elements() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonicalValue(b, e)
		}
		b.WriteByte(']')
	case KindMap:
		b.WriteByte('{')
		for i, e := range v.Fields() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(e.Key))
			b.WriteByte(':')
			writeCanonicalValue(b, e.Val)
		}
		b.WriteByte('}')
	}
}
