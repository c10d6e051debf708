package store

import "fmt"

// CreateCollection stores a new collection and returns it.
func (s *Store) CreateCollection(name string, description *string) (*Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name is required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &Collection{
		ID:          newID(),
		Name:        name,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	s.collections[c.ID] = c
	s.collectionOrder = append(s.collectionOrder, c.ID)
	return c.clone(), nil
}

// GetCollection returns the collection with the given id.
func (s *Store) GetCollection(id string) (*Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	if !ok {
		return nil, fmt.Errorf("collection %q: %w", id, ErrNotFound)
	}
	return c.clone(), nil
}

// ListCollections returns all collections in insertion order.
func (s *Store) ListCollections() []*Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Collection, 0, len(s.collectionOrder))
	for _, id := range s.collectionOrder {
		out = append(out, s.collections[id].clone())
	}
	return out
}

// DeleteCollection removes a collection. Prompts referencing it have their
// collection reference cleared, not cascade-deleted; their versions keep the
// historical value, and the cascade itself is not recorded as an update.
func (s *Store) DeleteCollection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[id]; !ok {
		return fmt.Errorf("collection %q: %w", id, ErrNotFound)
	}

	for _, p := range s.prompts {
		if p.CollectionID != nil && *p.CollectionID == id {
			p.CollectionID = nil
		}
	}

	delete(s.collections, id)
	s.collectionOrder = removeFromOrder(s.collectionOrder, id)
	return nil
}
