// Package store is the shared game document store: one transactional,
// subscribable document per game. The rules engine never talks to it
// directly; session controllers read snapshots, compute the next state and
// issue one atomic field-merge update per player action.
package store

import "errors"

// Document is one game's persisted field map, as decoded JSON.
type Document = map[string]interface{}

// Patch is a single atomic update: named fields merged last-writer-wins,
// plus field-level counter increments for collaborators (achievements,
// presence); the rules engine itself never uses Inc.
type Patch struct {
	Set map[string]interface{}
	Inc map[string]int64
}

type Store interface {
	// Get returns the current document, ErrNotFound when absent.
	Get(id string) (Document, error)

	// Create writes the initial document, failing if the id exists.
	Create(id string, doc Document) error

	// Update atomically merges the patch into the existing document.
	Update(id string, patch Patch) error

	// Subscribe registers onChange for every committed document, in commit
	// order, the subscriber's own writes included, each exactly once. The
	// current document is pushed first. The returned func unsubscribes.
	Subscribe(id string, onChange func(Document)) (func(), error)
}

var (
	ErrNotFound = errors.New("store: document not found")
	ErrExists   = errors.New("store: document already exists")
)
