package store

import "time"

// Collection is a named grouping for prompts. Deleting a collection detaches
// its prompts rather than deleting them.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Prompt is a stored text artifact, optionally grouped into a collection and
// annotated with tags. TagIDs preserves attach order; membership tests go
// through the store's bidirectional index.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  *string   `json:"description"`
	CollectionID *string   `json:"collection_id"`
	TagIDs       []string  `json:"tag_ids"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Tag is a globally unique label attachable to many prompts. Name is stored
// in its canonical lowercased form.
type Tag struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// PromptVersion is an immutable snapshot of a prompt's content-bearing
// fields. Version numbers are strictly sequential per prompt, starting at 1.
// CollectionID holds the historical value and never reacts to a later
// collection deletion.
type PromptVersion struct {
	ID            string    `json:"id"`
	PromptID      string    `json:"prompt_id"`
	VersionNumber int       `json:"version_number"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Description   *string   `json:"description"`
	CollectionID  *string   `json:"collection_id"`
	CreatedAt     time.Time `json:"created_at"`
	Note          *string   `json:"note,omitempty"`
}

// PromptInput carries the fields for creating or fully replacing a prompt.
type PromptInput struct {
	Title        string
	Content      string
	Description  *string
	CollectionID *string
}

// PromptPatch carries a partial prompt update. The Set* flags distinguish
// "field absent" from "field explicitly set to null"; a nil Description or
// CollectionID with its flag set clears the field.
type PromptPatch struct {
	Title           *string
	Content         *string
	SetDescription  bool
	Description     *string
	SetCollectionID bool
	CollectionID    *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p PromptPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && !p.SetDescription && !p.SetCollectionID
}

func (c *Collection) clone() *Collection {
	out := *c
	return &out
}

func (p *Prompt) clone() *Prompt {
	out := *p
	// Keep an empty slice empty so tag_ids serializes as [], not null.
	out.TagIDs = make([]string, len(p.TagIDs))
	copy(out.TagIDs, p.TagIDs)
	return &out
}

func (t *Tag) clone() *Tag {
	out := *t
	return &out
}

func (v *PromptVersion) clone() *PromptVersion {
	out := *v
	return &out
}
