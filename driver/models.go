package driver

import "time"

// DeclaredTagsDriver mirrors the declared preference rows for one user.
type DeclaredTagsDriver struct {
	Composers   []string
	Eras        []string
	Instruments []string
}

// TermFrequencyDriver is one row of a frequency-ranked term aggregation.
type TermFrequencyDriver struct {
	Term  string
	Count int
}

// ScoringQueryDriver is the flattened scoring query executed by the search
// engine driver. Empty boost fields mean the clause is absent.
type ScoringQueryDriver struct {
	// QueryText is matched against title (3×) and body; "" requests a
	// match-all base clause.
	QueryText string

	BoostTags []string
	TagWeight float64

	BoostAuthorIDs []string
	AuthorWeight   float64

	HasDecay    bool
	DecayOrigin time.Time
	DecayScale  time.Duration
	DecayValue  float64

	HasPopularity    bool
	PopularityFactor float64

	Size int
}

// CandidateDriver is one scored hit returned by the engine.
type CandidateDriver struct {
	ID        string
	AuthorID  string
	Title     string
	Body      string
	Tags      []string
	LikeCount int
	CreatedAt time.Time
	Score     float64
}

// DriverError represents an error from the driver layer.
type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}
