// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import "sort"

// FieldMask is the unordered set of leaf FieldPaths present in an
// object (spec §3), including empty-map leaves so the object can be
// reconstructed exactly.
type FieldMask struct {
	byCanonical map[string]FieldPath
}

// NewFieldMask builds a FieldMask from the given paths, de-duplicating
// by canonical string form.
func NewFieldMask(paths ...FieldPath) FieldMask {
	m := FieldMask{byCanonical: make(map[string]FieldPath, len(paths))}
	for _, p := range paths {
		m.byCanonical[p.String()] = p
	}
	return m
}

// Contains reports whether path is a member of the mask.
func (m FieldMask) Contains(path FieldPath) bool {
	_, ok := m.byCanonical[path.String()]
	return ok
}

// Len returns the number of paths in the mask.
func (m FieldMask) Len() int { return len(m.byCanonical) }

// Paths returns the mask's paths sorted by FieldPath.Compare (segment
// by segment), for deterministic iteration.
func (m FieldMask) Paths() []FieldPath {
	out := make([]FieldPath, 0, len(m.byCanonical))
	for _, p := range m.byCanonical {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
