package usecase

import (
	"context"
	"strings"

	"feed-ranker/domain"
	"feed-ranker/logger"
	"feed-ranker/port"
)

const (
	searchWindowDays = 30
	topQueryLimit    = 30
	topCategoryLimit = 30
	minTokenLength   = 2

	// blendEventScale controls how fast behavioral signal volume pulls the
	// blend weight toward the social/recency end.
	blendEventScale = 30
)

// BuildUserSignalsUsecase fuses declared preferences, recent search
// activity and the social graph into a UserSignals value. A failed signal
// source degrades to an empty contribution rather than failing the request;
// the usecase itself only errors when the request context is done.
type BuildUserSignalsUsecase struct {
	preferences port.PreferenceStore
	activity    port.SearchActivityReader
	socialGraph port.SocialGraphStore
}

func NewBuildUserSignalsUsecase(preferences port.PreferenceStore, activity port.SearchActivityReader, socialGraph port.SocialGraphStore) *BuildUserSignalsUsecase {
	return &BuildUserSignalsUsecase{
		preferences: preferences,
		activity:    activity,
		socialGraph: socialGraph,
	}
}

func (u *BuildUserSignalsUsecase) Execute(ctx context.Context, userID string) (*domain.UserSignals, error) {
	prefs, err := u.preferences.FindDeclaredTags(ctx, userID)
	if err != nil {
		logger.Logger.Warn("preference store unavailable, continuing without declared tags",
			"user_id", userID, "err", err)
		prefs = &domain.DeclaredPreferences{}
	}

	queries, err := u.activity.TopQueries(ctx, userID, searchWindowDays, topQueryLimit)
	if err != nil {
		logger.Logger.Warn("search activity unavailable, continuing without query terms",
			"user_id", userID, "err", err)
		queries = nil
	}

	categories, err := u.activity.TopCategories(ctx, userID, searchWindowDays, topCategoryLimit)
	if err != nil {
		logger.Logger.Warn("search activity unavailable, continuing without categories",
			"user_id", userID, "err", err)
		categories = nil
	}

	followees, err := u.socialGraph.FolloweeIDs(ctx, userID)
	if err != nil {
		logger.Logger.Warn("social graph unavailable, continuing without followees",
			"user_id", userID, "err", err)
		followees = nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topTags := mergeTopTags(categories, queries, prefs)
	events := len(queries) + len(categories)

	return domain.NewUserSignals(topTags, followees, blendWeight(events)), nil
}

// mergeTopTags builds the canonical ranked tag vocabulary. Priority order:
// category terms, then query tokens, then declared preferences. Uniqueness
// and the tag cap are enforced by the UserSignals constructor.
func mergeTopTags(categories, queries []domain.TermCount, prefs *domain.DeclaredPreferences) []string {
	merged := make([]string, 0, len(categories)+len(queries))

	for _, category := range categories {
		merged = append(merged, category.Term)
	}
	for _, query := range queries {
		for _, token := range strings.Fields(query.Term) {
			if len([]rune(token)) >= minTokenLength {
				merged = append(merged, token)
			}
		}
	}
	merged = append(merged, prefs.Composers...)
	merged = append(merged, prefs.Eras...)
	merged = append(merged, prefs.Instruments...)

	return merged
}

// blendWeight maps behavioral signal volume to the social/recency blend:
// clamp(1/(1+events/30), 0.2, 0.8), clamping done by the UserSignals
// constructor. events counts distinct queries plus distinct categories.
func blendWeight(events int) float64 {
	return 1 / (1 + float64(events)/blendEventScale)
}
