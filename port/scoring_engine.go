package port

import (
	"context"
	"feed-ranker/domain"
)

// ScoringEngine executes a composed relevance request against the external
// full-text scoring engine and returns candidates in descending score
// order. Engine failure surfaces as domain.RetrievalError.
type ScoringEngine interface {
	Retrieve(ctx context.Context, req domain.ScoringRequest) ([]domain.Candidate, error)
}
