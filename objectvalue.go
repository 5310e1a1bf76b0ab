// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import (
	"github.com/tandygong/docval/internal/overlay"
)

// ObjectValue is a persistent, map-rooted Value (spec §4.3): a base map
// produced by the codec or a prior mutation, overlaid by a
// copy-on-write layer of pending Set/Delete operations. Set and Delete
// never mutate the receiver; they return a new ObjectValue sharing all
// untouched structure with it, including the entire base map, which is
// never written to after construction.
//
// The overlay layer is backed by internal/overlay, a persistent radix
// tree keyed by field name; see that package's doc comment for why the
// ordering guarantees line up with the comparator's.
type ObjectValue struct {
	base     []MapEntry // sorted by Key, unique keys, never mutated
	overlays overlay.Map[Value]
}

// EmptyObjectValue returns an ObjectValue with no fields.
func EmptyObjectValue() ObjectValue {
	return ObjectValue{overlays: overlay.Empty[Value]()}
}

// ObjectValueFromMap builds an ObjectValue whose base is fields, with
// no pending overlay.
func ObjectValueFromMap(fields map[string]Value) ObjectValue {
	return objectValueOf(Map(fields))
}

// objectValueOf treats v as the base of a fresh ObjectValue if it is a
// Map; any other kind (or the absence of a value) becomes an empty
// object, per spec §4.3 set/delete: "creating an empty child ObjectValue
// if the existing child is not a Map".
func objectValueOf(v Value) ObjectValue {
	if v.kind != KindMap {
		return EmptyObjectValue()
	}
	return ObjectValue{base: v.m, overlays: overlay.Empty[Value]()}
}

func lookupBase(base []MapEntry, key string) (Value, bool) {
	lo, hi := 0, len(base)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case base[mid].Key < key:
			lo = mid + 1
		case base[mid].Key > key:
			hi = mid
		default:
			return base[mid].Val, true
		}
	}
	return Value{}, false
}

// childObjectValue resolves the ObjectValue for name as Set/Delete see
// it: the overlay's present value if one exists, an empty object if
// it's tombstoned, otherwise the base entry (empty if absent).
func (o ObjectValue) childObjectValue(name string) ObjectValue {
	if val, kind := o.overlays.Get(name); kind == overlay.Present {
		return objectValueOf(val)
	} else if kind == overlay.Deleted {
		return EmptyObjectValue()
	}
	if v, ok := lookupBase(o.base, name); ok {
		return objectValueOf(v)
	}
	return EmptyObjectValue()
}

// childIsMap reports whether name currently resolves to a Map value (so
// Delete may recurse into it rather than no-op).
func (o ObjectValue) childIsMap(name string) bool {
	if val, kind := o.overlays.Get(name); kind == overlay.Present {
		return val.kind == KindMap
	} else if kind == overlay.Deleted {
		return false
	}
	v, ok := lookupBase(o.base, name)
	return ok && v.kind == KindMap
}

// Get returns the value at path, descending overlays first and falling
// back to the base map (spec §4.3). An empty path returns the whole
// object, flattened to a Map value.
func (o ObjectValue) Get(path FieldPath) (Value, bool) {
	if path.IsEmpty() {
		return o.AsValue(), true
	}
	name := path.FirstSegment()
	rest, _ := path.PopFirst()

	if val, kind := o.overlays.Get(name); kind == overlay.Present {
		if rest.IsEmpty() {
			return val, true
		}
		if val.kind != KindMap {
			return Value{}, false
		}
		return objectValueOf(val).Get(rest)
	} else if kind == overlay.Deleted {
		return Value{}, false
	}

	v, ok := lookupBase(o.base, name)
	if !ok {
		return Value{}, false
	}
	if rest.IsEmpty() {
		return v, true
	}
	if v.kind != KindMap {
		return Value{}, false
	}
	return objectValueOf(v).Get(rest)
}

// Set returns a new ObjectValue with value installed at path (spec
// §4.3). Intermediate maps along path are created as needed; existing
// non-Map values along the path are overwritten with a fresh object,
// not coerced.
func (o ObjectValue) Set(path FieldPath, value Value) ObjectValue {
	if path.IsEmpty() {
		panic(invalidArgumentf("ObjectValue.Set: %w", errEmptyPath))
	}
	name := path.FirstSegment()
	rest, _ := path.PopFirst()

	if rest.IsEmpty() {
		return ObjectValue{base: o.base, overlays: o.overlays.Set(name, value)}
	}

	child := o.childObjectValue(name).Set(rest, value)
	return ObjectValue{base: o.base, overlays: o.overlays.Set(name, child.AsValue())}
}

// Delete returns a new ObjectValue with path removed (spec §4.3).
// Deleting through a non-Map value is a no-op (the object at that depth
// is returned unchanged, not coerced into a map); deleting an
// already-absent leaf is idempotent.
func (o ObjectValue) Delete(path FieldPath) ObjectValue {
	if path.IsEmpty() {
		panic(invalidArgumentf("ObjectValue.Delete: %w", errEmptyPath))
	}
	name := path.FirstSegment()
	rest, _ := path.PopFirst()

	if rest.IsEmpty() {
		return ObjectValue{base: o.base, overlays: o.overlays.Delete(name)}
	}

	if !o.childIsMap(name) {
		return o
	}
	child := o.childObjectValue(name).Delete(rest)
	return ObjectValue{base: o.base, overlays: o.overlays.Set(name, child.AsValue())}
}

// Iterate yields the object's merged (name, value) pairs in ascending
// name order (spec §4.3): base and overlay are both pre-sorted streams;
// on a tie the overlay wins and both streams advance, and a tombstoned
// overlay name is skipped in both. The returned slice is a point-in-time
// snapshot; re-call Iterate to see a later version.
func (o ObjectValue) Iterate() []MapEntry {
	overlayEntries := o.overlays.All()
	out := make([]MapEntry, 0, len(o.base)+len(overlayEntries))

	bi, oi := 0, 0
	for bi < len(o.base) && oi < len(overlayEntries) {
		b, ov := o.base[bi], overlayEntries[oi]
		switch {
		case b.Key < ov.Name:
			out = append(out, b)
			bi++
		case b.Key > ov.Name:
			if ov.Kind == overlay.Present {
				out = append(out, MapEntry{Key: ov.Name, Val: ov.Val})
			}
			oi++
		default: // equal keys: overlay wins, advance both
			if ov.Kind == overlay.Present {
				out = append(out, MapEntry{Key: ov.Name, Val: ov.Val})
			}
			bi++
			oi++
		}
	}
	for ; bi < len(o.base); bi++ {
		out = append(out, o.base[bi])
	}
	for ; oi < len(overlayEntries); oi++ {
		if overlayEntries[oi].Kind == overlay.Present {
			out = append(out, MapEntry{Key: overlayEntries[oi].Name, Val: overlayEntries[oi].Val})
		}
	}
	return out
}

// AsValue flattens the object (base merged with overlays) into a Map
// Value.
func (o ObjectValue) AsValue() Value {
	return mapFromSortedEntries(o.Iterate())
}

// FieldMask returns the set of leaf paths present in the object,
// derived by recursive descent (spec §3, §4.3): an empty nested map
// reached through a non-empty prefix contributes the path to that empty
// map itself, so the object can be rebuilt exactly by replaying
// (path, value) over an empty object. A fully empty object (no fields
// at all) contributes no paths - there is no leaf to name, and the
// empty FieldPath is not a valid Set/Delete target.
func (o ObjectValue) FieldMask() FieldMask {
	var paths []FieldPath
	o.collectFieldMask(FieldPath{}, &paths)
	return NewFieldMask(paths...)
}

func (o ObjectValue) collectFieldMask(prefix FieldPath, out *[]FieldPath) {
	entries := o.Iterate()
	if len(entries) == 0 {
		if !prefix.IsEmpty() {
			*out = append(*out, prefix)
		}
		return
	}
	for _, e := range entries {
		p := prefix.Append(e.Key)
		if e.Val.kind == KindMap {
			objectValueOf(e.Val).collectFieldMask(p, out)
		} else {
			*out = append(*out, p)
		}
	}
}

// Equal reports structural equality with other, per Compare's
// equivalence over the flattened Map representation (spec §9: the
// fixed map-equality bug - two objects are equal only when every
// corresponding entry compares equal and both iterators are exhausted
// together).
func (o ObjectValue) Equal(other ObjectValue) bool {
	return Equal(o.AsValue(), other.AsValue())
}

// Compare orders ObjectValues by their flattened Map representation.
func (o ObjectValue) Compare(other ObjectValue) int {
	return Compare(o.AsValue(), other.AsValue())
}

// Hash returns a hash consistent with Equal.
func (o ObjectValue) Hash() uint64 {
	return Hash(o.AsValue())
}
