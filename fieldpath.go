// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

import "strings"

// reservedKeySegment is the single segment that addresses a document's
// own key rather than a field (spec §4.2 IsKeyField).
const reservedKeySegment = "__name__"

// FieldPath is an immutable ordered sequence of non-empty segments
// addressing a (possibly nested) field. All operations return a fresh
// FieldPath; the zero value is the empty path.
type FieldPath struct {
	segments []string
}

// NewFieldPath builds a FieldPath from segments, copying them so the
// caller's slice can be reused or mutated afterward.
func NewFieldPath(segments ...string) FieldPath {
	return FieldPath{segments: append([]string(nil), segments...)}
}

// Length returns the number of segments.
func (p FieldPath) Length() int { return len(p.segments) }

// IsEmpty reports whether p has no segments.
func (p FieldPath) IsEmpty() bool { return len(p.segments) == 0 }

// Segment returns the i'th segment.
func (p FieldPath) Segment(i int) string { return p.segments[i] }

// FirstSegment returns the head segment. Panics if p is empty.
func (p FieldPath) FirstSegment() string { return p.segments[0] }

// PopFirst returns p with its head segment removed, and whether p had
// any segments to remove.
func (p FieldPath) PopFirst() (FieldPath, bool) {
	if len(p.segments) == 0 {
		return p, false
	}
	return FieldPath{segments: p.segments[1:]}, true
}

// Append returns a new FieldPath with segments appended after p's own.
func (p FieldPath) Append(segments ...string) FieldPath {
	out := make([]string, 0, len(p.segments)+len(segments))
	out = append(out, p.segments...)
	out = append(out, segments...)
	return FieldPath{segments: out}
}

// AppendPath returns a new FieldPath with other's segments appended
// after p's own.
func (p FieldPath) AppendPath(other FieldPath) FieldPath {
	return p.Append(other.segments...)
}

// IsPrefixOf reports whether p is a prefix of other, segment for
// segment.
func (p FieldPath) IsPrefixOf(other FieldPath) bool {
	if len(p.segments) > len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		if other.segments[i] != s {
			return false
		}
	}
	return true
}

// IsKeyField reports whether p is exactly the single reserved segment
// "__name__".
func (p FieldPath) IsKeyField() bool {
	return len(p.segments) == 1 && p.segments[0] == reservedKeySegment
}

// Compare orders FieldPaths lexicographically by segment.
func (p FieldPath) Compare(other FieldPath) int {
	n := min(len(p.segments), len(other.segments))
	for i := 0; i < n; i++ {
		if c := strings.Compare(p.segments[i], other.segments[i]); c != 0 {
			return c
		}
	}
	return len(p.segments) - len(other.segments)
}

// Equal reports whether p and other have the same segments.
func (p FieldPath) Equal(other FieldPath) bool { return p.Compare(other) == 0 }

// String returns the canonical dotted form (spec §4.2): segments are
// joined with '.', and any segment containing '.' or a backtick is
// wrapped in backticks with embedded backticks doubled.
func (p FieldPath) String() string {
	var b strings.Builder
	for i, s := range p.segments {
		if i > 0 {
			b.WriteByte('.')
		}
		if needsEscaping(s) {
			b.WriteByte('`')
			b.WriteString(strings.ReplaceAll(s, "`", "``"))
			b.WriteByte('`')
		} else {
			b.WriteString(s)
		}
	}
	return b.String()
}

func needsEscaping(s string) bool {
	return strings.ContainsAny(s, ".`")
}
