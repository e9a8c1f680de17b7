package gateway

import (
	"context"

	"feed-ranker/domain"
	"feed-ranker/driver"
)

// ScoringDriver executes driver-level scoring queries.
type ScoringDriver interface {
	SearchPosts(ctx context.Context, query driver.ScoringQueryDriver) ([]driver.CandidateDriver, error)
}

// ScoringEngineGateway translates domain scoring requests into the driver
// model and driver hits back into candidates. Engine failures surface as
// domain.RetrievalError; the gateway performs no retry.
type ScoringEngineGateway struct {
	driver ScoringDriver
}

func NewScoringEngineGateway(driver ScoringDriver) *ScoringEngineGateway {
	return &ScoringEngineGateway{driver: driver}
}

func (g *ScoringEngineGateway) Retrieve(ctx context.Context, req domain.ScoringRequest) ([]domain.Candidate, error) {
	hits, err := g.driver.SearchPosts(ctx, toDriverQuery(req))
	if err != nil {
		return nil, &domain.RetrievalError{
			Op:  "SearchPosts",
			Err: err.Error(),
		}
	}

	candidates := make([]domain.Candidate, len(hits))
	for i, hit := range hits {
		candidates[i] = domain.Candidate{
			ID:        hit.ID,
			AuthorID:  hit.AuthorID,
			Title:     hit.Title,
			Body:      hit.Body,
			Tags:      hit.Tags,
			LikeCount: hit.LikeCount,
			CreatedAt: hit.CreatedAt,
			Score:     hit.Score,
		}
	}
	return candidates, nil
}

// toDriverQuery flattens the closed boost variant set into the driver
// query. The type switch is exhaustive over domain.BoostClause.
func toDriverQuery(req domain.ScoringRequest) driver.ScoringQueryDriver {
	query := driver.ScoringQueryDriver{
		QueryText: req.QueryText,
		Size:      req.Size,
	}

	for _, boost := range req.Boosts {
		switch b := boost.(type) {
		case domain.TagBoost:
			query.BoostTags = b.Tags
			query.TagWeight = b.Weight
		case domain.SocialBoost:
			query.BoostAuthorIDs = b.AuthorIDs
			query.AuthorWeight = b.Weight
		case domain.FreshnessDecay:
			query.HasDecay = true
			query.DecayOrigin = b.Origin
			query.DecayScale = b.Scale
			query.DecayValue = b.Decay
		case domain.PopularityFactor:
			query.HasPopularity = true
			query.PopularityFactor = b.Factor
		}
	}
	return query
}
