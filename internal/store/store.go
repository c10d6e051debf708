// Package store implements the in-memory storage, query, and versioning
// engine behind the PromptLab API. It owns all entities (prompts,
// collections, tags, prompt versions), enforces referential integrity across
// them, and serializes every mutation under a single writer lock so that a
// prompt update and its version snapshot are observed as one atomic unit.
//
// The store is volatile by design: restarting the process loses all state.
package store

import "sync"

// Store holds the authoritative in-memory state for all entity types.
// Insertion order is preserved per entity type for deterministic default
// listing. All methods are safe for concurrent use; writes are exclusive,
// reads are shared.
type Store struct {
	mu    sync.RWMutex
	clock Clock

	prompts     map[string]*Prompt
	promptOrder []string

	collections     map[string]*Collection
	collectionOrder []string

	tags     map[string]*Tag
	tagOrder []string
	// tagsByName maps the lowercased tag name to the tag id and enforces
	// global case-insensitive name uniqueness.
	tagsByName map[string]string

	// Bidirectional prompt/tag index. Both directions are updated inside
	// every attach, detach, and delete, never just one.
	promptTags map[string]map[string]struct{}
	tagPrompts map[string]map[string]struct{}

	// versions holds each prompt's snapshots in ascending version order.
	versions map[string][]*PromptVersion
}

// New creates an empty store using the system clock.
func New() *Store {
	return NewWithClock(systemClock{})
}

// NewWithClock creates an empty store with an injected clock.
func NewWithClock(clock Clock) *Store {
	s := &Store{clock: clock}
	s.reset()
	return s
}

// Clear removes all stored entities, resetting the store to its initial
// state. Intended for test isolation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) reset() {
	s.prompts = make(map[string]*Prompt)
	s.promptOrder = nil
	s.collections = make(map[string]*Collection)
	s.collectionOrder = nil
	s.tags = make(map[string]*Tag)
	s.tagOrder = nil
	s.tagsByName = make(map[string]string)
	s.promptTags = make(map[string]map[string]struct{})
	s.tagPrompts = make(map[string]map[string]struct{})
	s.versions = make(map[string][]*PromptVersion)
}

// removeFromOrder deletes id from an insertion-order slice in place.
func removeFromOrder(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// stringPtrEqual reports whether two optional strings carry the same value.
func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
