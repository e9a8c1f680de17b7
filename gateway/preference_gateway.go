package gateway

import (
	"context"

	"feed-ranker/domain"
	"feed-ranker/driver"
)

// PreferenceDriver reads declared preference rows.
type PreferenceDriver interface {
	GetDeclaredTags(ctx context.Context, userID string) (*driver.DeclaredTagsDriver, error)
}

// PreferenceGateway adapts the preference driver to the PreferenceStore
// port, wrapping failures as non-fatal signal source errors.
type PreferenceGateway struct {
	driver PreferenceDriver
}

func NewPreferenceGateway(driver PreferenceDriver) *PreferenceGateway {
	return &PreferenceGateway{driver: driver}
}

func (g *PreferenceGateway) FindDeclaredTags(ctx context.Context, userID string) (*domain.DeclaredPreferences, error) {
	tags, err := g.driver.GetDeclaredTags(ctx, userID)
	if err != nil {
		return nil, &domain.SignalSourceError{
			Source: "preference_store",
			Op:     "FindDeclaredTags",
			Err:    err.Error(),
		}
	}

	return &domain.DeclaredPreferences{
		Composers:   tags.Composers,
		Eras:        tags.Eras,
		Instruments: tags.Instruments,
	}, nil
}
