package port

import (
	"context"
	"feed-ranker/domain"
)

// PreferenceStore reads a user's declared taste tags. A missing but valid
// user yields empty preferences, not an error.
type PreferenceStore interface {
	FindDeclaredTags(ctx context.Context, userID string) (*domain.DeclaredPreferences, error)
}

// SearchActivityReader summarizes a user's recent search events over a
// trailing window. Both lists are frequency-ranked, most frequent first.
type SearchActivityReader interface {
	TopQueries(ctx context.Context, userID string, windowDays, limit int) ([]domain.TermCount, error)
	TopCategories(ctx context.Context, userID string, windowDays, limit int) ([]domain.TermCount, error)
}

// SocialGraphStore reads the full followee set of a user, untruncated.
type SocialGraphStore interface {
	FolloweeIDs(ctx context.Context, userID string) ([]string, error)
}
