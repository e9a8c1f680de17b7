package usecase

import (
	"context"
	"time"

	"feed-ranker/domain"
	"feed-ranker/logger"
	"feed-ranker/port"

	"github.com/google/uuid"
)

// AlgorithmID identifies the ranking pipeline version in response metadata.
const AlgorithmID = "multi-signal-blend-v1"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// signalComponents lists the signals contributing to the ranking, exposed
// as response metadata for observability.
var signalComponents = []string{
	"declared_preferences",
	"search_activity",
	"social_graph",
	"freshness",
	"popularity",
}

// RecommendFeedResult is the public output: the final page plus static
// metadata about how it was produced.
type RecommendFeedResult struct {
	Items            []domain.RankedFeedItem
	AlgorithmID      string
	SignalComponents []string
	RequestedSize    int
}

// RecommendFeedUsecase sequences the ranking pipeline: signal aggregation,
// query composition, candidate retrieval and refinement.
type RecommendFeedUsecase struct {
	signals  *BuildUserSignalsUsecase
	composer *ScoringQueryComposer
	engine   port.ScoringEngine
}

func NewRecommendFeedUsecase(signals *BuildUserSignalsUsecase, composer *ScoringQueryComposer, engine port.ScoringEngine) *RecommendFeedUsecase {
	return &RecommendFeedUsecase{
		signals:  signals,
		composer: composer,
		engine:   engine,
	}
}

// Execute produces the ranked feed page for one user. Input validation runs
// before any I/O; a failed engine call is fatal for the request, while
// failed signal sources degrade inside the aggregator.
func (u *RecommendFeedUsecase) Execute(ctx context.Context, userID string, requestedSize int, seenIDs []string) (*RecommendFeedResult, error) {
	if err := validateRequest(userID, requestedSize); err != nil {
		return nil, err
	}

	signals, err := u.signals.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}

	// One reference instant per call keeps the decay clause, and with it
	// the whole pipeline, deterministic for frozen collaborators.
	request := u.composer.Compose(signals, requestedSize, time.Now().UTC())

	candidates, err := u.engine.Retrieve(ctx, request)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(seenIDs))
	for _, id := range seenIDs {
		seen[id] = struct{}{}
	}

	items := RefineCandidates(candidates, seen, requestedSize)

	logger.Logger.Info("feed recommended",
		"user_id", userID,
		"top_tags", len(signals.TopTags()),
		"followees", len(signals.FolloweeIDs()),
		"candidates", len(candidates),
		"returned", len(items),
	)

	return &RecommendFeedResult{
		Items:            items,
		AlgorithmID:      AlgorithmID,
		SignalComponents: signalComponents,
		RequestedSize:    requestedSize,
	}, nil
}

func validateRequest(userID string, requestedSize int) error {
	if userID == "" {
		return &domain.ValidationError{Field: "user_id", Err: "must not be empty"}
	}
	if _, err := uuid.Parse(userID); err != nil {
		return &domain.ValidationError{Field: "user_id", Err: "must be a valid UUID"}
	}
	if requestedSize <= 0 {
		return &domain.ValidationError{Field: "size", Err: "must be positive"}
	}
	if requestedSize > MaxPageSize {
		return &domain.ValidationError{Field: "size", Err: "must not exceed 100"}
	}
	return nil
}
