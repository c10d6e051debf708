package store

import (
	"sort"
	"strings"
)

// MatchMode selects how a set of tag selectors is matched against a prompt's
// tag set.
type MatchMode string

const (
	// MatchAnd retains prompts whose tag set is a superset of the selectors.
	MatchAnd MatchMode = "and"
	// MatchOr retains prompts whose tag set intersects the selectors.
	MatchOr MatchMode = "or"
)

// PromptFilter describes a combined prompt query. All supplied filters
// compose conjunctively. Tags accepts tag ids or names; Match defaults to
// MatchAnd when empty.
type PromptFilter struct {
	CollectionID string
	Search       string
	Tags         []string
	Match        MatchMode
}

// ListPrompts returns the prompts passing every supplied filter, stable
// sorted by updated_at descending with insertion order breaking ties. An
// empty result is not an error.
//
// A selector that resolves to no live tag matches nothing: under MatchAnd
// the result is empty, under MatchOr the selector is ignored.
func (s *Store) ListPrompts(f PromptFilter) []*Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match := f.Match
	if match == "" {
		match = MatchAnd
	}

	var selected map[string]struct{}
	if len(f.Tags) > 0 {
		selected = make(map[string]struct{}, len(f.Tags))
		for _, sel := range f.Tags {
			id, err := s.resolveLocked(sel)
			if err != nil {
				if match == MatchAnd {
					// No prompt can carry a tag that does not exist.
					return []*Prompt{}
				}
				continue
			}
			selected[id] = struct{}{}
		}
		if match == MatchOr && len(selected) == 0 {
			return []*Prompt{}
		}
	}

	search := strings.ToLower(f.Search)

	out := make([]*Prompt, 0, len(s.promptOrder))
	for _, id := range s.promptOrder {
		p := s.prompts[id]
		if f.CollectionID != "" {
			if p.CollectionID == nil || *p.CollectionID != f.CollectionID {
				continue
			}
		}
		if search != "" && !promptMatchesSearch(p, search) {
			continue
		}
		if selected != nil && !s.promptMatchesTagsLocked(id, selected, match) {
			continue
		}
		out = append(out, p.clone())
	}

	// Iteration above follows insertion order, so a stable sort keeps it as
	// the tie-break.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// promptMatchesSearch reports whether the lowercased query occurs in the
// prompt's title, content, or description.
func promptMatchesSearch(p *Prompt, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Content), query) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), query)
}

func (s *Store) promptMatchesTagsLocked(promptID string, selected map[string]struct{}, match MatchMode) bool {
	attached := s.promptTags[promptID]
	if match == MatchOr {
		for id := range selected {
			if _, ok := attached[id]; ok {
				return true
			}
		}
		return false
	}
	for id := range selected {
		if _, ok := attached[id]; !ok {
			return false
		}
	}
	return true
}
