package gateway

import (
	"context"

	"feed-ranker/domain"
	"feed-ranker/driver"
)

// SearchActivityDriver reads aggregated search-event rows.
type SearchActivityDriver interface {
	GetTopQueries(ctx context.Context, userID string, windowDays, limit int) ([]driver.TermFrequencyDriver, error)
	GetTopCategories(ctx context.Context, userID string, windowDays, limit int) ([]driver.TermFrequencyDriver, error)
}

// SearchActivityGateway adapts the search-event driver to the
// SearchActivityReader port.
type SearchActivityGateway struct {
	driver SearchActivityDriver
}

func NewSearchActivityGateway(driver SearchActivityDriver) *SearchActivityGateway {
	return &SearchActivityGateway{driver: driver}
}

func (g *SearchActivityGateway) TopQueries(ctx context.Context, userID string, windowDays, limit int) ([]domain.TermCount, error) {
	rows, err := g.driver.GetTopQueries(ctx, userID, windowDays, limit)
	if err != nil {
		return nil, &domain.SignalSourceError{
			Source: "search_activity",
			Op:     "TopQueries",
			Err:    err.Error(),
		}
	}
	return toTermCounts(rows), nil
}

func (g *SearchActivityGateway) TopCategories(ctx context.Context, userID string, windowDays, limit int) ([]domain.TermCount, error) {
	rows, err := g.driver.GetTopCategories(ctx, userID, windowDays, limit)
	if err != nil {
		return nil, &domain.SignalSourceError{
			Source: "search_activity",
			Op:     "TopCategories",
			Err:    err.Error(),
		}
	}
	return toTermCounts(rows), nil
}

func toTermCounts(rows []driver.TermFrequencyDriver) []domain.TermCount {
	terms := make([]domain.TermCount, len(rows))
	for i, row := range rows {
		terms[i] = domain.TermCount{
			Term:  row.Term,
			Count: row.Count,
		}
	}
	return terms
}
