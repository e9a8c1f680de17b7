package domain

import "math"

const (
	// MaxTopTags bounds the ranked tag vocabulary carried by UserSignals.
	MaxTopTags = 20

	minBlendWeight = 0.2
	maxBlendWeight = 0.8
)

// DeclaredPreferences holds a user's self-declared taste tags. A missing
// user yields empty lists, not an error.
type DeclaredPreferences struct {
	Composers   []string
	Eras        []string
	Instruments []string
}

// TermCount is one entry of a frequency-ranked term list from the
// search-activity log.
type TermCount struct {
	Term  string
	Count int
}

// UserSignals is the per-request fusion of a user's ranking signals: the
// canonical ranked tag vocabulary, the followee set and the blend weight.
// It is built once per recommendation call and never mutated afterwards.
type UserSignals struct {
	topTags     []string
	followeeIDs []string
	followeeSet map[string]struct{}
	blendWeight float64
}

// NewUserSignals constructs UserSignals, enforcing the tag uniqueness and
// cap invariants and clamping the blend weight into its valid range. Input
// order is preserved for both tags and followees.
func NewUserSignals(topTags []string, followeeIDs []string, blendWeight float64) *UserSignals {
	uniqueTags := make([]string, 0, len(topTags))
	seenTags := make(map[string]struct{}, len(topTags))
	for _, tag := range topTags {
		if tag == "" {
			continue
		}
		if _, ok := seenTags[tag]; ok {
			continue
		}
		seenTags[tag] = struct{}{}
		uniqueTags = append(uniqueTags, tag)
		if len(uniqueTags) == MaxTopTags {
			break
		}
	}

	followees := make([]string, 0, len(followeeIDs))
	followeeSet := make(map[string]struct{}, len(followeeIDs))
	for _, id := range followeeIDs {
		if id == "" {
			continue
		}
		if _, ok := followeeSet[id]; ok {
			continue
		}
		followeeSet[id] = struct{}{}
		followees = append(followees, id)
	}

	return &UserSignals{
		topTags:     uniqueTags,
		followeeIDs: followees,
		followeeSet: followeeSet,
		blendWeight: clampBlendWeight(blendWeight),
	}
}

func clampBlendWeight(weight float64) float64 {
	return math.Min(maxBlendWeight, math.Max(minBlendWeight, weight))
}

// TopTags returns the ranked tag vocabulary, highest-priority first.
func (s *UserSignals) TopTags() []string {
	return s.topTags
}

// FolloweeIDs returns the followee set in store order.
func (s *UserSignals) FolloweeIDs() []string {
	return s.followeeIDs
}

// Follows reports whether the user follows the given author.
func (s *UserSignals) Follows(authorID string) bool {
	_, ok := s.followeeSet[authorID]
	return ok
}

// BlendWeight returns the social/recency blend weight in [0.2, 0.8]. More
// behavioral signal pulls the weight down. The scoring formula does not
// consume it yet; it is exposed for downstream systems.
func (s *UserSignals) BlendWeight() float64 {
	return s.blendWeight
}
