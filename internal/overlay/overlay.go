// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package overlay provides the persistent name -> value mapping that
// backs ObjectValue's pending-write layer.
//
// It is a thin, typed wrapper around a hashicorp/go-immutable-radix
// tree keyed by UTF-8 field name. The radix tree gives O(k) (k = key
// length) copy-on-write Insert/Delete that shares all untouched
// structure with prior versions, and an Iterator that walks keys in
// byte-lexicographic order - which is Unicode code-point order for
// UTF-8, exactly the ordering the value comparator and the merged
// iteration invariant require. No tree node in this package is ever
// mutated after it is reachable from a Map value; every mutating method
// returns a new Map.
package overlay

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Kind distinguishes "no overlay entry at all" from the two kinds of
// overlay entry an ObjectValue installs: a replacement value, or a
// tombstone masking a base entry of the same name.
type Kind int

const (
	Absent Kind = iota
	Present
	Deleted
)

type entry[T any] struct {
	kind Kind
	val  T
}

// Map is a persistent ordered map from field name to overlay entry.
// The zero value is not usable; construct with Empty.
type Map[T any] struct {
	tree *iradix.Tree[entry[T]]
}

// Empty returns an overlay map with no entries.
func Empty[T any]() Map[T] {
	return Map[T]{tree: iradix.New[entry[T]]()}
}

// Get reports the overlay state for name: Absent if no overlay entry
// exists, Present with val if the name was set, or Deleted if the name
// is tombstoned.
func (m Map[T]) Get(name string) (val T, kind Kind) {
	e, ok := m.tree.Get([]byte(name))
	if !ok {
		return val, Absent
	}
	return e.val, e.kind
}

// Set returns a new Map with name mapped to val, leaving m unchanged.
func (m Map[T]) Set(name string, val T) Map[T] {
	newTree, _, _ := m.tree.Insert([]byte(name), entry[T]{kind: Present, val: val})
	return Map[T]{tree: newTree}
}

// Delete returns a new Map with name tombstoned, leaving m unchanged.
// Deleting an already-absent or already-deleted name is idempotent: it
// still installs (or keeps) a tombstone, since the caller may be
// shadowing a base entry of the same name that this Map knows nothing
// about.
func (m Map[T]) Delete(name string) Map[T] {
	newTree, _, _ := m.tree.Insert([]byte(name), entry[T]{kind: Deleted})
	return Map[T]{tree: newTree}
}

// Len returns the number of names with an overlay entry, present or
// deleted.
func (m Map[T]) Len() int {
	return m.tree.Len()
}

// Entry is one (name, state) pair yielded by All, in name order.
type Entry[T any] struct {
	Name string
	Kind Kind
	Val  T
}

// All returns the overlay entries in ascending name order, present and
// tombstoned alike; callers merging this against a base map decide what
// a tombstone means.
func (m Map[T]) All() []Entry[T] {
	out := make([]Entry[T], 0, m.tree.Len())
	it := m.tree.Root().Iterator()
	for {
		k, e, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, Entry[T]{Name: string(k), Kind: e.kind, Val: e.val})
	}
	return out
}
