package domain

import (
	"fmt"
	"strings"
	"time"
)

// ScoringConfig carries the boost weights and decay shape used when
// composing scoring requests. It is immutable after construction and is
// injected into the query composer, never read from process globals, so
// tests can vary weights per case.
type ScoringConfig struct {
	tagBoostWeight    float64
	followBoostWeight float64
	freshnessHalfLife time.Duration
	freshnessDecay    float64
	popularityFactor  float64
}

// NewScoringConfig validates and constructs a ScoringConfig. Malformed
// values are rejected here, at startup, not at query time.
func NewScoringConfig(tagBoostWeight, followBoostWeight float64, freshnessHalfLife time.Duration, freshnessDecay, popularityFactor float64) (*ScoringConfig, error) {
	if tagBoostWeight <= 0 {
		return nil, fmt.Errorf("tag boost weight must be positive, got %v", tagBoostWeight)
	}
	if followBoostWeight <= 0 {
		return nil, fmt.Errorf("follow boost weight must be positive, got %v", followBoostWeight)
	}
	if freshnessHalfLife <= 0 {
		return nil, fmt.Errorf("freshness half-life must be positive, got %v", freshnessHalfLife)
	}
	if freshnessDecay <= 0 || freshnessDecay >= 1 {
		return nil, fmt.Errorf("freshness decay must be in (0, 1), got %v", freshnessDecay)
	}
	if popularityFactor <= 0 {
		return nil, fmt.Errorf("popularity factor must be positive, got %v", popularityFactor)
	}

	return &ScoringConfig{
		tagBoostWeight:    tagBoostWeight,
		followBoostWeight: followBoostWeight,
		freshnessHalfLife: freshnessHalfLife,
		freshnessDecay:    freshnessDecay,
		popularityFactor:  popularityFactor,
	}, nil
}

// DefaultScoringConfig returns the reference weights.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		tagBoostWeight:    2.0,
		followBoostWeight: 3.0,
		freshnessHalfLife: 7 * 24 * time.Hour,
		freshnessDecay:    0.5,
		popularityFactor:  1.2,
	}
}

// TagBoostWeight is the additive weight for documents sharing a top tag.
func (c *ScoringConfig) TagBoostWeight() float64 {
	return c.tagBoostWeight
}

// FollowBoostWeight is the additive weight for documents by followed authors.
func (c *ScoringConfig) FollowBoostWeight() float64 {
	return c.followBoostWeight
}

// FreshnessHalfLife is the distance from "now" at which the freshness
// contribution falls to the decay value.
func (c *ScoringConfig) FreshnessHalfLife() time.Duration {
	return c.freshnessHalfLife
}

// FreshnessDecay is the decay factor at half-life distance.
func (c *ScoringConfig) FreshnessDecay() float64 {
	return c.freshnessDecay
}

// PopularityFactor scales the log1p(likeCount) contribution.
func (c *ScoringConfig) PopularityFactor() float64 {
	return c.popularityFactor
}

// BoostClause is an additive scoring contribution applied on top of base
// relevance. The variant set is closed so translators can match it
// exhaustively.
type BoostClause interface {
	boostClause()
}

// TagBoost adds a fixed weight to documents whose tag set intersects Tags.
type TagBoost struct {
	Tags   []string
	Weight float64
}

// SocialBoost adds a fixed weight to documents authored by a followed user.
type SocialBoost struct {
	AuthorIDs []string
	Weight    float64
}

// FreshnessDecay is a gaussian decay over document creation time: the
// contribution is Decay at Scale distance from Origin.
type FreshnessDecay struct {
	Origin time.Time
	Scale  time.Duration
	Decay  float64
}

// PopularityFactor contributes Factor × log1p(likeCount), with likeCount
// defaulting to 0 when absent.
type PopularityFactor struct {
	Factor float64
}

func (TagBoost) boostClause()         {}
func (SocialBoost) boostClause()      {}
func (FreshnessDecay) boostClause()   {}
func (PopularityFactor) boostClause() {}

// ScoringRequest is the composed relevance query sent to the scoring
// engine. Base relevance and every boost contribution combine by summation.
type ScoringRequest struct {
	// QueryText is the space-joined top tags matched against title (3×) and
	// body (1×). Empty text requests a match-all base clause.
	QueryText string
	// Boosts holds the boost clauses in their fixed assembly order.
	Boosts []BoostClause
	// Size is the over-fetched page size.
	Size int
}

// MatchAll reports whether the base clause matches every indexed document.
func (r ScoringRequest) MatchAll() bool {
	return strings.TrimSpace(r.QueryText) == ""
}
