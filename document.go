// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package docval

// Document is the boundary spec §3/§6 draws between this package and
// the surrounding engine: the core consumes only GetField, and doesn't
// care how a Document stores its key, version, or ObjectValue.
type Document interface {
	// GetField returns the value at path, and whether it is present.
	GetField(path FieldPath) (Value, bool)
}

// objectDocument adapts an ObjectValue to Document, for callers (and
// tests) that have a bare ObjectValue rather than a full Document
// implementation from the layer above.
type objectDocument struct {
	object ObjectValue
}

// DocumentFromObjectValue adapts object to the Document interface that
// Filter.Matches consumes.
func DocumentFromObjectValue(object ObjectValue) Document {
	return objectDocument{object: object}
}

func (d objectDocument) GetField(path FieldPath) (Value, bool) {
	return d.object.Get(path)
}
