package store

import "fmt"

// CreatePrompt stores a new prompt. A non-nil collection reference must
// resolve to an existing collection. Creation records no version; the first
// snapshot is taken on the first update or checkpoint.
func (s *Store) CreatePrompt(in PromptInput) (*Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateCollectionRefLocked(in.CollectionID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	p := &Prompt{
		ID:           newID(),
		Title:        in.Title,
		Content:      in.Content,
		Description:  in.Description,
		CollectionID: in.CollectionID,
		TagIDs:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.prompts[p.ID] = p
	s.promptOrder = append(s.promptOrder, p.ID)
	s.promptTags[p.ID] = make(map[string]struct{})
	return p.clone(), nil
}

// GetPrompt returns the prompt with the given id.
func (s *Store) GetPrompt(id string) (*Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, fmt.Errorf("prompt %q: %w", id, ErrNotFound)
	}
	return p.clone(), nil
}

// ReplacePrompt overwrites all content-bearing fields of an existing prompt,
// bumps its updated_at, and snapshots the post-update state as a new version.
func (s *Store) ReplacePrompt(id string, in PromptInput) (*Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, fmt.Errorf("prompt %q: %w", id, ErrNotFound)
	}
	if err := s.validateCollectionRefLocked(in.CollectionID); err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Content = in.Content
	p.Description = in.Description
	p.CollectionID = in.CollectionID
	p.UpdatedAt = s.clock.Now()
	s.snapshotLocked(p, nil)
	return p.clone(), nil
}

// PatchPrompt applies a partial update to an existing prompt. An empty patch
// fails with ErrValidation before any state is touched. A successful patch
// bumps updated_at and snapshots the post-update state.
func (s *Store) PatchPrompt(id string, patch PromptPatch) (*Prompt, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no fields provided for update: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[id]
	if !ok {
		return nil, fmt.Errorf("prompt %q: %w", id, ErrNotFound)
	}
	if patch.SetCollectionID {
		if err := s.validateCollectionRefLocked(patch.CollectionID); err != nil {
			return nil, err
		}
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.SetDescription {
		p.Description = patch.Description
	}
	if patch.SetCollectionID {
		p.CollectionID = patch.CollectionID
	}
	p.UpdatedAt = s.clock.Now()
	s.snapshotLocked(p, nil)
	return p.clone(), nil
}

// DeletePrompt removes a prompt together with all of its versions and its
// tag attachments. The tags themselves survive.
func (s *Store) DeletePrompt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return fmt.Errorf("prompt %q: %w", id, ErrNotFound)
	}

	for tagID := range s.promptTags[id] {
		delete(s.tagPrompts[tagID], id)
	}
	delete(s.promptTags, id)
	delete(s.versions, id)
	delete(s.prompts, id)
	s.promptOrder = removeFromOrder(s.promptOrder, id)
	return nil
}

// validateCollectionRefLocked fails with ErrInvalidReference when a non-nil
// collection reference does not resolve. Caller must hold the lock.
func (s *Store) validateCollectionRefLocked(collectionID *string) error {
	if collectionID == nil {
		return nil
	}
	if _, ok := s.collections[*collectionID]; !ok {
		return fmt.Errorf("collection %q: %w", *collectionID, ErrInvalidReference)
	}
	return nil
}
