package store

import (
	"fmt"
	"strings"
)

// CreateTag stores a new tag. Names are globally unique under
// case-insensitive comparison and are stored lowercased; a collision fails
// with ErrConflict.
func (s *Store) CreateTag(name string, description *string) (*Tag, error) {
	canonical := strings.ToLower(strings.TrimSpace(name))
	if canonical == "" {
		return nil, fmt.Errorf("tag name is required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tagsByName[canonical]; exists {
		return nil, fmt.Errorf("tag %q already exists: %w", canonical, ErrConflict)
	}

	t := &Tag{
		ID:          newID(),
		Name:        canonical,
		Description: description,
		CreatedAt:   s.clock.Now(),
	}
	s.tags[t.ID] = t
	s.tagOrder = append(s.tagOrder, t.ID)
	s.tagsByName[canonical] = t.ID
	s.tagPrompts[t.ID] = make(map[string]struct{})
	return t.clone(), nil
}

// ListTags returns all tags in insertion order.
func (s *Store) ListTags() []*Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Tag, 0, len(s.tagOrder))
	for _, id := range s.tagOrder {
		out = append(out, s.tags[id].clone())
	}
	return out
}

// DeleteTag removes a tag, detaching it from every prompt first. Prompts are
// otherwise untouched: detachment is not a content edit, so no version is
// recorded.
func (s *Store) DeleteTag(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	if !ok {
		return fmt.Errorf("tag %q: %w", id, ErrNotFound)
	}

	for promptID := range s.tagPrompts[id] {
		delete(s.promptTags[promptID], id)
		p := s.prompts[promptID]
		p.TagIDs = removeFromOrder(p.TagIDs, id)
	}

	delete(s.tagPrompts, id)
	delete(s.tagsByName, t.Name)
	delete(s.tags, id)
	s.tagOrder = removeFromOrder(s.tagOrder, id)
	return nil
}

// AttachTags attaches a batch of tags to a prompt. The batch is validated
// atomically: if any tag id does not resolve, nothing is attached. Tags that
// are already attached are silently skipped.
func (s *Store) AttachTags(promptID string, tagIDs []string) (*Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[promptID]
	if !ok {
		return nil, fmt.Errorf("prompt %q: %w", promptID, ErrNotFound)
	}
	for _, tagID := range tagIDs {
		if _, ok := s.tags[tagID]; !ok {
			return nil, fmt.Errorf("tag %q: %w", tagID, ErrInvalidReference)
		}
	}

	attached := s.promptTags[promptID]
	for _, tagID := range tagIDs {
		if _, already := attached[tagID]; already {
			continue
		}
		attached[tagID] = struct{}{}
		s.tagPrompts[tagID][promptID] = struct{}{}
		p.TagIDs = append(p.TagIDs, tagID)
	}
	return p.clone(), nil
}

// DetachTag removes a single tag attachment from a prompt. It fails with
// ErrNotFound when the prompt, the tag, or the attachment itself is missing.
func (s *Store) DetachTag(promptID, tagID string) (*Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prompts[promptID]
	if !ok {
		return nil, fmt.Errorf("prompt %q: %w", promptID, ErrNotFound)
	}
	if _, ok := s.tags[tagID]; !ok {
		return nil, fmt.Errorf("tag %q: %w", tagID, ErrNotFound)
	}
	if _, ok := s.promptTags[promptID][tagID]; !ok {
		return nil, fmt.Errorf("tag %q is not attached to prompt %q: %w", tagID, promptID, ErrNotFound)
	}

	delete(s.promptTags[promptID], tagID)
	delete(s.tagPrompts[tagID], promptID)
	p.TagIDs = removeFromOrder(p.TagIDs, tagID)
	return p.clone(), nil
}

// Resolve accepts either a tag id or a tag name (any case) and returns the
// canonical tag id, failing with ErrInvalidReference when neither matches.
func (s *Store) Resolve(selector string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveLocked(selector)
}

func (s *Store) resolveLocked(selector string) (string, error) {
	if _, ok := s.tags[selector]; ok {
		return selector, nil
	}
	if id, ok := s.tagsByName[strings.ToLower(selector)]; ok {
		return id, nil
	}
	return "", fmt.Errorf("tag selector %q: %w", selector, ErrInvalidReference)
}
