// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"sync"
	"sync/atomic"

	"github.com/tandygong/docval"
)

// SyncDocument adapts gaissmai/bart's SyncLite (cmd/synclite.go in the
// teacher) to the document model: spec §5 says callers needing an
// atomic swap "arrange it at the layer above using compare-and-swap on
// the document handle", and this is exactly that layer. Readers call
// Get/Load without any lock; writers serialize on the mutex so two
// concurrent Set calls don't race to publish stale versions, the same
// split SyncLite uses between atomic.Pointer for readers and a mutex
// for writers.
type SyncDocument struct {
	atomic.Pointer[docval.ObjectValue]
	sync.Mutex
}

// NewSyncDocument returns a SyncDocument wrapping an empty object.
func NewSyncDocument() *SyncDocument {
	d := new(SyncDocument)
	empty := docval.EmptyObjectValue()
	d.Store(&empty)
	return d
}

// SyncDocumentFrom returns a SyncDocument wrapping a copy of object.
func SyncDocumentFrom(object docval.ObjectValue) *SyncDocument {
	d := new(SyncDocument)
	d.Store(&object)
	return d
}

// Get returns the value at path in the current published version.
func (d *SyncDocument) Get(path docval.FieldPath) (docval.Value, bool) {
	return d.Load().Get(path)
}

// Set publishes a new version with value installed at path.
func (d *SyncDocument) Set(path docval.FieldPath, value docval.Value) {
	d.Lock() // exclude other writers
	defer d.Unlock()

	old := d.Load()               // current published version
	updated := old.Set(path, value) // new persistent version, sharing untouched structure with old
	d.Store(&updated)             // atomically publish
}

// Delete publishes a new version with path removed.
func (d *SyncDocument) Delete(path docval.FieldPath) {
	d.Lock()
	defer d.Unlock()

	old := d.Load()
	updated := old.Delete(path)
	d.Store(&updated)
}
