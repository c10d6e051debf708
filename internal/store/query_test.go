package store

import (
	"testing"
)

// seedQueryFixture creates two collections, three tags, and four prompts
// with a known spread of memberships for filter tests.
func seedQueryFixture(t *testing.T, s *Store) (prompts map[string]*Prompt, collections map[string]*Collection) {
	t.Helper()

	c1, err := s.CreateCollection("greetings", nil)
	if err != nil {
		t.Fatalf("CreateCollection() error = %v", err)
	}
	c2, err := s.CreateCollection("farewells", nil)
	if err != nil {
		t.Fatalf("CreateCollection() error = %v", err)
	}

	tags := map[string]string{}
	for _, name := range []string{"a", "b", "c"} {
		tag, err := s.CreateTag(name, nil)
		if err != nil {
			t.Fatalf("CreateTag(%q) error = %v", name, err)
		}
		tags[name] = tag.ID
	}

	prompts = map[string]*Prompt{}
	seed := []struct {
		key        string
		title      string
		content    string
		desc       *string
		collection *string
		tagNames   []string
	}{
		{key: "hello", title: "Hello", content: "Say hello politely", collection: &c1.ID, tagNames: []string{"a", "b"}},
		{key: "hi", title: "Hi there", content: "Casual greeting", desc: strPtr("informal hello"), collection: &c1.ID, tagNames: []string{"a"}},
		{key: "bye", title: "Goodbye", content: "Say goodbye", collection: &c2.ID, tagNames: []string{"b"}},
		{key: "plain", title: "Untagged", content: "No tags here"},
	}
	for _, sp := range seed {
		p, err := s.CreatePrompt(PromptInput{
			Title:        sp.title,
			Content:      sp.content,
			Description:  sp.desc,
			CollectionID: sp.collection,
		})
		if err != nil {
			t.Fatalf("CreatePrompt(%q) error = %v", sp.key, err)
		}
		var ids []string
		for _, name := range sp.tagNames {
			ids = append(ids, tags[name])
		}
		if len(ids) > 0 {
			if _, err := s.AttachTags(p.ID, ids); err != nil {
				t.Fatalf("AttachTags(%q) error = %v", sp.key, err)
			}
		}
		prompts[sp.key] = p
	}

	return prompts, map[string]*Collection{"greetings": c1, "farewells": c2}
}

func titlesOf(prompts []*Prompt) []string {
	out := make([]string, len(prompts))
	for i, p := range prompts {
		out[i] = p.Title
	}
	return out
}

func sameTitles(got []*Prompt, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, title := range want {
		if got[i].Title != title {
			return false
		}
	}
	return true
}

func TestListPrompts_Filters(t *testing.T) {
	s := newTestStore()
	_, collections := seedQueryFixture(t, s)

	tests := []struct {
		name       string
		filter     PromptFilter
		wantTitles []string
	}{
		{
			name:       "no filter returns all",
			filter:     PromptFilter{},
			wantTitles: []string{"Untagged", "Goodbye", "Hi there", "Hello"},
		},
		{
			name:       "collection filter",
			filter:     PromptFilter{CollectionID: collections["greetings"].ID},
			wantTitles: []string{"Hi there", "Hello"},
		},
		{
			name:       "unknown collection is empty not error",
			filter:     PromptFilter{CollectionID: "missing"},
			wantTitles: []string{},
		},
		{
			name:       "search matches title case-insensitively",
			filter:     PromptFilter{Search: "GOODBYE"},
			wantTitles: []string{"Goodbye"},
		},
		{
			name:       "search matches content",
			filter:     PromptFilter{Search: "politely"},
			wantTitles: []string{"Hello"},
		},
		{
			name:       "search matches description",
			filter:     PromptFilter{Search: "informal"},
			wantTitles: []string{"Hi there"},
		},
		{
			name:       "tags AND requires superset",
			filter:     PromptFilter{Tags: []string{"a", "b"}},
			wantTitles: []string{"Hello"},
		},
		{
			name:       "tags OR requires intersection",
			filter:     PromptFilter{Tags: []string{"a", "b"}, Match: MatchOr},
			wantTitles: []string{"Goodbye", "Hi there", "Hello"},
		},
		{
			name:       "tag with no prompts",
			filter:     PromptFilter{Tags: []string{"c"}},
			wantTitles: []string{},
		},
		{
			name:       "unresolvable selector under AND is empty",
			filter:     PromptFilter{Tags: []string{"a", "ghost"}},
			wantTitles: []string{},
		},
		{
			name:       "unresolvable selector under OR is ignored",
			filter:     PromptFilter{Tags: []string{"b", "ghost"}, Match: MatchOr},
			wantTitles: []string{"Goodbye", "Hello"},
		},
		{
			name: "all filters compose conjunctively",
			filter: PromptFilter{
				CollectionID: collections["greetings"].ID,
				Search:       "hello",
				Tags:         []string{"a"},
			},
			wantTitles: []string{"Hi there", "Hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ListPrompts(tt.filter)
			if !sameTitles(got, tt.wantTitles) {
				t.Errorf("ListPrompts() = %v, want %v", titlesOf(got), tt.wantTitles)
			}
		})
	}
}

func TestListPrompts_SortsByUpdatedAtDescending(t *testing.T) {
	s := newTestStore()
	prompts, _ := seedQueryFixture(t, s)

	// Touching the oldest prompt moves it to the front regardless of filters.
	if _, err := s.PatchPrompt(prompts["hello"].ID, PromptPatch{Content: strPtr("Say hello very politely")}); err != nil {
		t.Fatalf("PatchPrompt() error = %v", err)
	}

	got := s.ListPrompts(PromptFilter{})
	want := []string{"Hello", "Untagged", "Goodbye", "Hi there"}
	if !sameTitles(got, want) {
		t.Errorf("ListPrompts() = %v, want %v", titlesOf(got), want)
	}
}

func TestListPrompts_TiesKeepInsertionOrder(t *testing.T) {
	// A frozen clock makes every updated_at identical, so insertion order
	// must decide.
	s := NewWithClock(&fakeClock{step: 0})

	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.CreatePrompt(PromptInput{Title: title, Content: "same instant"}); err != nil {
			t.Fatalf("CreatePrompt(%q) error = %v", title, err)
		}
	}

	got := s.ListPrompts(PromptFilter{})
	want := []string{"first", "second", "third"}
	if !sameTitles(got, want) {
		t.Errorf("ListPrompts() = %v, want insertion order %v", titlesOf(got), want)
	}
}

// TestGreetingWorkflow walks one prompt through the whole engine: grouping,
// editing, versioning, tagging, and tag deletion.
func TestGreetingWorkflow(t *testing.T) {
	s := newTestStore()

	c1, err := s.CreateCollection("C1", nil)
	if err != nil {
		t.Fatalf("CreateCollection() error = %v", err)
	}
	p1, err := s.CreatePrompt(PromptInput{Title: "Greet", Content: "Hello", CollectionID: &c1.ID})
	if err != nil {
		t.Fatalf("CreatePrompt() error = %v", err)
	}

	if _, err := s.PatchPrompt(p1.ID, PromptPatch{Content: strPtr("Hi")}); err != nil {
		t.Fatalf("PatchPrompt() error = %v", err)
	}

	// Versions capture post-update state: the first update creates version 1
	// holding "Hi"; version 2 does not exist yet.
	v1, err := s.GetVersion(p1.ID, 1)
	if err != nil {
		t.Fatalf("GetVersion(1) error = %v", err)
	}
	if v1.Content != "Hi" {
		t.Errorf("version 1 content = %q, want Hi", v1.Content)
	}
	if _, err := s.GetVersion(p1.ID, 2); err == nil {
		t.Error("GetVersion(2) succeeded, want error before a second update")
	}

	tag, err := s.CreateTag("greeting", nil)
	if err != nil {
		t.Fatalf("CreateTag() error = %v", err)
	}
	if _, err := s.AttachTags(p1.ID, []string{tag.ID}); err != nil {
		t.Fatalf("AttachTags() error = %v", err)
	}

	got := s.ListPrompts(PromptFilter{Tags: []string{"greeting"}})
	if len(got) != 1 || got[0].ID != p1.ID {
		t.Fatalf("ListPrompts(tags=greeting) = %v, want [P1]", titlesOf(got))
	}

	if err := s.DeleteTag(tag.ID); err != nil {
		t.Fatalf("DeleteTag() error = %v", err)
	}

	got = s.ListPrompts(PromptFilter{Tags: []string{"greeting"}})
	if len(got) != 0 {
		t.Errorf("ListPrompts(tags=greeting) after delete = %v, want empty", titlesOf(got))
	}
}
