package usecase

import (
	"strings"
	"time"

	"feed-ranker/domain"
)

const (
	overFetchFactor  = 5
	minCandidatePool = 100
)

// ScoringQueryComposer turns user signals into a scoring request. It is a
// pure translation: no I/O, no clock reads — the reference instant for the
// freshness decay is supplied by the caller.
type ScoringQueryComposer struct {
	config *domain.ScoringConfig
}

func NewScoringQueryComposer(config *domain.ScoringConfig) *ScoringQueryComposer {
	return &ScoringQueryComposer{config: config}
}

// Compose builds the relevance+boost request for one recommendation call.
// Boost clauses are assembled in a fixed order: tag affinity, social,
// freshness decay, popularity. Tag and social boosts are skipped when their
// term sets are empty; freshness and popularity always contribute.
func (c *ScoringQueryComposer) Compose(signals *domain.UserSignals, requestedSize int, now time.Time) domain.ScoringRequest {
	boosts := make([]domain.BoostClause, 0, 4)

	if tags := signals.TopTags(); len(tags) > 0 {
		boosts = append(boosts, domain.TagBoost{
			Tags:   tags,
			Weight: c.config.TagBoostWeight(),
		})
	}
	if followees := signals.FolloweeIDs(); len(followees) > 0 {
		boosts = append(boosts, domain.SocialBoost{
			AuthorIDs: followees,
			Weight:    c.config.FollowBoostWeight(),
		})
	}
	boosts = append(boosts, domain.FreshnessDecay{
		Origin: now,
		Scale:  c.config.FreshnessHalfLife(),
		Decay:  c.config.FreshnessDecay(),
	})
	boosts = append(boosts, domain.PopularityFactor{
		Factor: c.config.PopularityFactor(),
	})

	return domain.ScoringRequest{
		QueryText: strings.Join(signals.TopTags(), " "),
		Boosts:    boosts,
		Size:      overFetchSize(requestedSize),
	}
}

// overFetchSize requests more candidates than the final page so the
// refinement stage can dedup and diversify without starving it.
func overFetchSize(requestedSize int) int {
	size := overFetchFactor * requestedSize
	if size < minCandidatePool {
		return minCandidatePool
	}
	return size
}
