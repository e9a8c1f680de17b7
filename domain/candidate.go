package domain

import "time"

// ExcerptLimit is the maximum number of characters carried into a feed item
// excerpt before truncation.
const ExcerptLimit = 140

const ellipsis = "…"

// Candidate is a content item returned by the scoring engine before
// deduplication and diversification. Score is engine-assigned and depends
// on the signals the query carried.
type Candidate struct {
	ID        string
	AuthorID  string
	Title     string
	Body      string
	Tags      []string
	LikeCount int
	CreatedAt time.Time
	Score     float64
}

// LeadTag returns the candidate's first tag, or "" when it has none. It is
// one of the two diversification keys.
func (c Candidate) LeadTag() string {
	if len(c.Tags) == 0 {
		return ""
	}
	return c.Tags[0]
}

// RankedFeedItem is the only entity returned to callers: a candidate with
// its body finalized into an excerpt.
type RankedFeedItem struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Tags      []string  `json:"tags"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	Score     float64   `json:"score"`
}

// NewRankedFeedItem finalizes a candidate for output. All fields pass
// through unchanged except the body, which becomes the excerpt.
func NewRankedFeedItem(c Candidate) RankedFeedItem {
	return RankedFeedItem{
		ID:        c.ID,
		AuthorID:  c.AuthorID,
		Title:     c.Title,
		Excerpt:   Excerpt(c.Body),
		Tags:      c.Tags,
		LikeCount: c.LikeCount,
		CreatedAt: c.CreatedAt,
		Score:     c.Score,
	}
}

// Excerpt truncates body text to ExcerptLimit characters, appending an
// ellipsis marker when truncation occurred. Text at or under the limit is
// returned unchanged.
func Excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= ExcerptLimit {
		return body
	}
	return string(runes[:ExcerptLimit]) + ellipsis
}
