package domain

import (
	"strings"
	"testing"
	"time"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "short body returned unchanged",
			body:     "A short note on Bach's cello suites.",
			expected: "A short note on Bach's cello suites.",
		},
		{
			name:     "exactly at limit returned unchanged",
			body:     strings.Repeat("a", ExcerptLimit),
			expected: strings.Repeat("a", ExcerptLimit),
		},
		{
			name:     "over limit truncated with ellipsis",
			body:     strings.Repeat("a", ExcerptLimit+1),
			expected: strings.Repeat("a", ExcerptLimit) + "…",
		},
		{
			name:     "empty body",
			body:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.body); got != tt.expected {
				t.Errorf("Excerpt() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExcerpt_MultibyteCountsRunes(t *testing.T) {
	body := strings.Repeat("é", ExcerptLimit+10)

	got := Excerpt(body)

	expected := strings.Repeat("é", ExcerptLimit) + "…"
	if got != expected {
		t.Errorf("Excerpt() truncated by bytes, not runes")
	}
	if count := len([]rune(got)); count != ExcerptLimit+1 {
		t.Errorf("len(runes) = %d, want %d", count, ExcerptLimit+1)
	}
}

func TestCandidateLeadTag(t *testing.T) {
	tagged := Candidate{Tags: []string{"baroque", "cello"}}
	if got := tagged.LeadTag(); got != "baroque" {
		t.Errorf("LeadTag() = %q, want %q", got, "baroque")
	}

	untagged := Candidate{}
	if got := untagged.LeadTag(); got != "" {
		t.Errorf("LeadTag() = %q, want empty", got)
	}
}

func TestNewRankedFeedItem(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	candidate := Candidate{
		ID:        "post-1",
		AuthorID:  "author-1",
		Title:     "On the Goldberg Variations",
		Body:      strings.Repeat("x", ExcerptLimit+50),
		Tags:      []string{"bach", "keyboard"},
		LikeCount: 42,
		CreatedAt: createdAt,
		Score:     7.5,
	}

	item := NewRankedFeedItem(candidate)

	if item.ID != "post-1" || item.AuthorID != "author-1" {
		t.Errorf("identity fields not carried over: %+v", item)
	}
	if item.Title != candidate.Title {
		t.Errorf("Title = %q, want %q", item.Title, candidate.Title)
	}
	if item.Excerpt != strings.Repeat("x", ExcerptLimit)+"…" {
		t.Errorf("Excerpt not truncated: %d runes", len([]rune(item.Excerpt)))
	}
	if item.LikeCount != 42 || !item.CreatedAt.Equal(createdAt) || item.Score != 7.5 {
		t.Errorf("metadata fields not carried over: %+v", item)
	}
}
