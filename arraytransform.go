// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

// ArrayTransform is an idempotent, value-producing array mutation
// (spec §4.4): applying it twice is the same as applying it once, and
// it needs no base value for conflict resolution - the remote and the
// local client compute the same result independently.
//
// Per spec §9's design note, Union and Remove are modeled as a single
// tagged variant rather than two unrelated types, so that two
// transforms compare equal only when both their tag and their elements
// match.
type ArrayTransform struct {
	kind     arrayTransformKind
	elements []Value
}

type arrayTransformKind byte

const (
	transformUnion arrayTransformKind = iota
	transformRemove
)

// Union returns a transform that appends each element not already
// present, preserving the order of pre-existing elements and
// collapsing duplicates within elements itself.
func Union(elements ...Value) ArrayTransform {
	return ArrayTransform{kind: transformUnion, elements: append([]Value(nil), elements...)}
}

// Remove returns a transform that removes every occurrence of each
// element.
func Remove(elements ...Value) ArrayTransform {
	return ArrayTransform{kind: transformRemove, elements: append([]Value(nil), elements...)}
}

// Apply computes the transformed array from prior, which is treated as
// an empty array if it is null or not an Array (spec §4.4).
func (t ArrayTransform) Apply(prior Value) Value {
	base := priorElements(prior)
	switch t.kind {
	case transformUnion:
		return Array(unionElements(base, t.elements)...)
	case transformRemove:
		return Array(removeElements(base, t.elements)...)
	default:
		panic(internalErrorf("ArrayTransform.Apply: unrecognized kind %d", t.kind))
	}
}

// Equal reports whether t and other have the same tag and elements, in
// the same order.
func (t ArrayTransform) Equal(other ArrayTransform) bool {
	if t.kind != other.kind || len(t.elements) != len(other.elements) {
		return false
	}
	for i := range t.elements {
		if !Equal(t.elements[i], other.elements[i]) {
			return false
		}
	}
	return true
}

func priorElements(prior Value) []Value {
	if prior.kind != KindArray {
		return nil
	}
	return prior.arr
}

func unionElements(base, additions []Value) []Value {
	result := append([]Value(nil), base...)
	for _, e := range additions {
		if !containsEqual(result, e) {
			result = append(result, e)
		}
	}
	return result
}

func removeElements(base, removals []Value) []Value {
	result := make([]Value, 0, len(base))
	for _, v := range base {
		if !containsEqual(removals, v) {
			result = append(result, v)
		}
	}
	return result
}

func containsEqual(list []Value, v Value) bool {
	for _, x := range list {
		if Equal(x, v) {
			return true
		}
	}
	return false
}
