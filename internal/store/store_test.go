package store

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"promptlab/internal/store/mocks"
)

// fakeClock advances by a fixed step on every call so each mutation gets a
// distinct, ordered timestamp.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newTestStore() *Store {
	return NewWithClock(&fakeClock{
		now:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		step: time.Second,
	})
}

func strPtr(s string) *string {
	return &s
}

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if got := s.ListPrompts(PromptFilter{}); len(got) != 0 {
		t.Errorf("new store has %d prompts, want 0", len(got))
	}
}

func TestNewWithClock_UsesInjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixed := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(fixed).AnyTimes()

	s := NewWithClock(mockClock)
	p, err := s.CreatePrompt(PromptInput{Title: "Greet", Content: "Hello"})
	if err != nil {
		t.Fatalf("CreatePrompt() error = %v", err)
	}
	if !p.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt, fixed)
	}
	if !p.UpdatedAt.Equal(fixed) {
		t.Errorf("UpdatedAt = %v, want %v", p.UpdatedAt, fixed)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore()

	c, _ := s.CreateCollection("demo", nil)
	p, _ := s.CreatePrompt(PromptInput{Title: "Greet", Content: "Hello", CollectionID: &c.ID})
	tag, _ := s.CreateTag("greeting", nil)
	if _, err := s.AttachTags(p.ID, []string{tag.ID}); err != nil {
		t.Fatalf("AttachTags() error = %v", err)
	}

	s.Clear()

	if got := s.ListPrompts(PromptFilter{}); len(got) != 0 {
		t.Errorf("prompts after Clear() = %d, want 0", len(got))
	}
	if got := s.ListCollections(); len(got) != 0 {
		t.Errorf("collections after Clear() = %d, want 0", len(got))
	}
	if got := s.ListTags(); len(got) != 0 {
		t.Errorf("tags after Clear() = %d, want 0", len(got))
	}

	// The released tag name is reusable.
	if _, err := s.CreateTag("greeting", nil); err != nil {
		t.Errorf("CreateTag() after Clear() error = %v", err)
	}
}
