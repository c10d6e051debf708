package store

import "fmt"

// snapshotLocked copies the prompt's current content-bearing fields into a
// new immutable version numbered one past the highest existing number.
// Caller must hold the write lock.
func (s *Store) snapshotLocked(p *Prompt, note *string) *PromptVersion {
	next := 1
	if existing := s.versions[p.ID]; len(existing) > 0 {
		next = existing[len(existing)-1].VersionNumber + 1
	}

	v := &PromptVersion{
		ID:            newID(),
		PromptID:      p.ID,
		VersionNumber: next,
		Title:         p.Title,
		Content:       p.Content,
		Description:   p.Description,
		CollectionID:  p.CollectionID,
		CreatedAt:     s.clock.Now(),
		Note:          note,
	}
	s.versions[p.ID] = append(s.versions[p.ID], v)
	return v
}

// ListVersions returns a prompt's versions newest-first. Offset and limit
// are applied after sorting; a limit <= 0 means no limit.
func (s *Store) ListVersions(promptID string, limit, offset int) ([]*PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.prompts[promptID]; !ok {
		return nil, fmt.Errorf("prompt %q: %w", promptID, ErrNotFound)
	}

	all := s.versions[promptID]
	out := make([]*PromptVersion, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i].clone())
	}

	if offset > 0 {
		if offset >= len(out) {
			return []*PromptVersion{}, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// GetVersion returns the version with the exact given number.
func (s *Store) GetVersion(promptID string, versionNumber int) (*PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := s.findVersionLocked(promptID, versionNumber)
	if err != nil {
		return nil, err
	}
	return v.clone(), nil
}

// CreateCheckpoint records a manual snapshot of the prompt's current state.
// The prompt itself is not modified.
func (s *Store) CreateCheckpoint(promptID string, note *string) (*PromptVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[promptID]
	if !ok {
		return nil, fmt.Errorf("prompt %q: %w", promptID, ErrNotFound)
	}
	return s.snapshotLocked(p, note).clone(), nil
}

// Revert restores a prompt's content-bearing fields from a prior version.
// Reverting to a version identical to the current state fails with
// ErrConflict and changes nothing. A successful revert bumps updated_at and
// is itself recorded as a new version, so the sequence only ever grows.
func (s *Store) Revert(promptID string, versionNumber int) (*Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[promptID]
	if !ok {
		return nil, fmt.Errorf("prompt %q: %w", promptID, ErrNotFound)
	}
	v, err := s.findVersionLocked(promptID, versionNumber)
	if err != nil {
		return nil, err
	}

	if p.Title == v.Title && p.Content == v.Content &&
		stringPtrEqual(p.Description, v.Description) &&
		stringPtrEqual(p.CollectionID, v.CollectionID) {
		return nil, fmt.Errorf("prompt already matches version %d: %w", versionNumber, ErrConflict)
	}

	p.Title = v.Title
	p.Content = v.Content
	p.Description = v.Description
	p.CollectionID = v.CollectionID
	// The snapshot may predate a collection deletion; a live prompt must not
	// carry a dangling reference.
	if p.CollectionID != nil {
		if _, ok := s.collections[*p.CollectionID]; !ok {
			p.CollectionID = nil
		}
	}
	p.UpdatedAt = s.clock.Now()

	note := fmt.Sprintf("reverted to version %d", versionNumber)
	s.snapshotLocked(p, &note)
	return p.clone(), nil
}

func (s *Store) findVersionLocked(promptID string, versionNumber int) (*PromptVersion, error) {
	if _, ok := s.prompts[promptID]; !ok {
		return nil, fmt.Errorf("prompt %q: %w", promptID, ErrNotFound)
	}
	for _, v := range s.versions[promptID] {
		if v.VersionNumber == versionNumber {
			return v, nil
		}
	}
	return nil, fmt.Errorf("version %d of prompt %q: %w", versionNumber, promptID, ErrNotFound)
}
