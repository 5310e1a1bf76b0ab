// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"math"
	"testing"
)

func docWith(fields map[string]Value) Document {
	return DocumentFromObjectValue(ObjectValueFromMap(fields))
}

func TestFilterArrayContainsAny(t *testing.T) {
	t.Parallel()

	filter, err := NewFilter(NewFieldPath("tags"), ArrayContainsAny, Array(String("x"), String("y")))
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}

	matching := docWith(map[string]Value{"tags": Array(String("y"), String("z"))})
	if !filter.Matches(matching) {
		t.Fatalf("filter should match a document whose tags array shares an element with the bound")
	}

	scalar := docWith(map[string]Value{"tags": String("y")})
	if filter.Matches(scalar) {
		t.Fatalf("array-contains-any should never match a non-array field, even with an equal scalar")
	}

	noOverlap := docWith(map[string]Value{"tags": Array(String("q"))})
	if filter.Matches(noOverlap) {
		t.Fatalf("filter matched a document with no overlapping tag")
	}
}

func TestFilterArrayContainsAnyRequiresArrayBound(t *testing.T) {
	t.Parallel()

	_, err := NewFilter(NewFieldPath("tags"), ArrayContainsAny, String("x"))
	if !IsInvalidArgument(err) {
		t.Fatalf("NewFilter with a non-array array-contains-any bound should be InvalidArgument, got %v", err)
	}
}

func TestFilterKeyFieldIn(t *testing.T) {
	t.Parallel()

	bound := Array(Reference("coll/a"), Reference("coll/b"))
	filter, err := NewFilter(NewFieldPath("__name__"), In, bound)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}

	match := docWith(map[string]Value{"__name__": Reference("coll/b")})
	if !filter.Matches(match) {
		t.Fatalf("key-field in filter should match a referenced key")
	}

	noMatch := docWith(map[string]Value{"__name__": Reference("coll/c")})
	if filter.Matches(noMatch) {
		t.Fatalf("key-field in filter matched a key outside the bound")
	}
}

func TestFilterKeyFieldRejectsArrayContains(t *testing.T) {
	t.Parallel()

	_, err := NewFilter(NewFieldPath("__name__"), ArrayContains, Reference("a/b"))
	if !IsInvalidArgument(err) {
		t.Fatalf("array-contains on the key field should be InvalidArgument, got %v", err)
	}
}

func TestFilterNullBoundOnlyEqualTo(t *testing.T) {
	t.Parallel()

	_, err := NewFilter(NewFieldPath("a"), GreaterThan, Null())
	if !IsInvalidArgument(err) {
		t.Fatalf("null bound with > should be InvalidArgument, got %v", err)
	}

	filter, err := NewFilter(NewFieldPath("a"), EqualTo, Null())
	if err != nil {
		t.Fatalf("NewFilter(a, =, null): %v", err)
	}
	if !filter.Matches(docWith(map[string]Value{"a": Null()})) {
		t.Fatalf("null filter should match a null field")
	}
	if filter.Matches(docWith(map[string]Value{"a": Int(0)})) {
		t.Fatalf("null filter should not match a non-null field")
	}
}

func TestFilterNaNBoundMatchesOnlyNaNFields(t *testing.T) {
	t.Parallel()

	filter, err := NewFilter(NewFieldPath("a"), EqualTo, Double(math.NaN()))
	if err != nil {
		t.Fatalf("NewFilter(a, =, NaN): %v", err)
	}

	nanDoc := docWith(map[string]Value{"a": Double(math.NaN())})
	if !filter.Matches(nanDoc) {
		t.Fatalf("a NaN-bound filter should match a NaN field")
	}

	otherDoc := docWith(map[string]Value{"a": Int(0)})
	if filter.Matches(otherDoc) {
		t.Fatalf("NaN-bound filter matched a non-NaN field")
	}

	zeroBound, err := NewFilter(NewFieldPath("a"), EqualTo, Double(0))
	if err != nil {
		t.Fatalf("NewFilter(a, =, 0.0): %v", err)
	}
	if zeroBound.Matches(nanDoc) {
		t.Fatalf("a 0.0-bound filter matched a NaN field")
	}
}

func TestFilterCrossTypeInequalityNeverMatches(t *testing.T) {
	t.Parallel()

	filter, err := NewFilter(NewFieldPath("a"), GreaterThan, Int(0))
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if filter.Matches(docWith(map[string]Value{"a": String("1")})) {
		t.Fatalf("inequality filter matched across types")
	}
}

func TestFilterAbsentFieldNeverMatches(t *testing.T) {
	t.Parallel()

	filter, err := NewFilter(NewFieldPath("missing"), EqualTo, Int(1))
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if filter.Matches(docWith(map[string]Value{"other": Int(1)})) {
		t.Fatalf("filter matched a document missing the field entirely")
	}
}

func TestFilterEqualRespectsVariant(t *testing.T) {
	t.Parallel()

	field, _ := NewFilter(NewFieldPath("a"), EqualTo, Reference("x/y"))
	key, _ := NewFilter(NewFieldPath("__name__"), EqualTo, Reference("x/y"))

	if field.Equal(key) {
		t.Fatalf("a field filter and a key filter with the same operator/bound reported Equal")
	}
}

func TestFilterCanonicalIDDistinguishesNestedTypeCollisions(t *testing.T) {
	t.Parallel()

	stringBound, _ := NewFilter(NewFieldPath("a"), In, Array(String("1")))
	intBound, _ := NewFilter(NewFieldPath("a"), In, Array(Int(1)))

	if stringBound.CanonicalID() == intBound.CanonicalID() {
		t.Fatalf("CanonicalID collided for an array bound containing the string %q vs the integer 1", "1")
	}
}

func TestFilterCanonicalIDStableForEqualFilters(t *testing.T) {
	t.Parallel()

	a, _ := NewFilter(NewFieldPath("a", "b"), LessThan, Int(5))
	b, _ := NewFilter(NewFieldPath("a", "b"), LessThan, Int(5))

	if a.CanonicalID() != b.CanonicalID() {
		t.Fatalf("two equivalently-constructed filters produced different canonical IDs")
	}
}

func TestIsInequality(t *testing.T) {
	t.Parallel()

	for _, op := range []Operator{LessThan, LessThanOrEqual, GreaterThan, GreaterThanOrEqual} {
		if !op.IsInequality() {
			t.Fatalf("%v.IsInequality() = false, want true", op)
		}
	}
	for _, op := range []Operator{EqualTo, In, ArrayContains, ArrayContainsAny} {
		if op.IsInequality() {
			t.Fatalf("%v.IsInequality() = true, want false", op)
		}
	}
}
