package domain

import (
	"fmt"
	"reflect"
	"testing"
)

func TestNewUserSignals_TagInvariants(t *testing.T) {
	tests := []struct {
		name     string
		topTags  []string
		expected []string
	}{
		{
			name:     "preserves input order",
			topTags:  []string{"baroque", "bach", "cello"},
			expected: []string{"baroque", "bach", "cello"},
		},
		{
			name:     "drops duplicates keeping first occurrence",
			topTags:  []string{"bach", "cello", "bach", "cello", "piano"},
			expected: []string{"bach", "cello", "piano"},
		},
		{
			name:     "drops empty tags",
			topTags:  []string{"", "bach", "", "cello"},
			expected: []string{"bach", "cello"},
		},
		{
			name:     "nil input yields empty vocabulary",
			topTags:  nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := NewUserSignals(tt.topTags, nil, 0.5)
			if !reflect.DeepEqual(signals.TopTags(), tt.expected) {
				t.Errorf("TopTags() = %v, want %v", signals.TopTags(), tt.expected)
			}
		})
	}
}

func TestNewUserSignals_TagCap(t *testing.T) {
	tags := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		tags = append(tags, fmt.Sprintf("tag-%02d", i))
	}

	signals := NewUserSignals(tags, nil, 0.5)

	if got := len(signals.TopTags()); got != MaxTopTags {
		t.Fatalf("len(TopTags()) = %d, want %d", got, MaxTopTags)
	}
	// The cap keeps the highest-priority prefix.
	if got := signals.TopTags()[0]; got != "tag-00" {
		t.Errorf("TopTags()[0] = %q, want %q", got, "tag-00")
	}
	if got := signals.TopTags()[MaxTopTags-1]; got != "tag-19" {
		t.Errorf("TopTags()[19] = %q, want %q", got, "tag-19")
	}
}

func TestNewUserSignals_Followees(t *testing.T) {
	signals := NewUserSignals(nil, []string{"author-a", "author-b", "author-a", ""}, 0.5)

	expected := []string{"author-a", "author-b"}
	if !reflect.DeepEqual(signals.FolloweeIDs(), expected) {
		t.Errorf("FolloweeIDs() = %v, want %v", signals.FolloweeIDs(), expected)
	}

	if !signals.Follows("author-a") {
		t.Error("Follows(author-a) = false, want true")
	}
	if signals.Follows("author-z") {
		t.Error("Follows(author-z) = true, want false")
	}
}

func TestNewUserSignals_BlendWeightClamp(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		expected float64
	}{
		{name: "in range passes through", weight: 0.5, expected: 0.5},
		{name: "above max clamps to 0.8", weight: 1.0, expected: 0.8},
		{name: "below min clamps to 0.2", weight: 0.05, expected: 0.2},
		{name: "exactly min", weight: 0.2, expected: 0.2},
		{name: "exactly max", weight: 0.8, expected: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := NewUserSignals(nil, nil, tt.weight)
			if got := signals.BlendWeight(); got != tt.expected {
				t.Errorf("BlendWeight() = %v, want %v", got, tt.expected)
			}
		})
	}
}
