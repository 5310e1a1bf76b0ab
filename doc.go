// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package docval implements the document value model shared by every
// layer above it in a client-side document database: a tagged Value
// algebra with a total cross-type order, a persistent ObjectValue that
// layers pending writes over a base snapshot without mutating it, and
// the FieldFilter / ArrayTransform primitives that evaluate queries and
// mutate arrays against that algebra.
//
// Every public type in this package is immutable and safe for
// concurrent use without external synchronization: Value, FieldPath,
// FieldMask, ObjectValue and Filter never change after construction,
// and mutators such as ObjectValue.Set, ObjectValue.Delete and
// ArrayTransform.Apply always return a new value rather than modifying
// their receiver in place. There is no I/O, no blocking, and no
// configuration surface at this layer; callers needing an atomic swap
// of a document's state (for example a compare-and-swap on a document
// handle shared between goroutines) build it on top using
// atomic.Pointer, the way docdemo.SyncDocument does.
package docval
