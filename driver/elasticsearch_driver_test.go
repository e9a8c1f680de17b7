package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchBody_FullQuery(t *testing.T) {
	origin := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	query := ScoringQueryDriver{
		QueryText:        "bach cello",
		BoostTags:        []string{"bach", "cello"},
		TagWeight:        2.0,
		BoostAuthorIDs:   []string{"author-a"},
		AuthorWeight:     3.0,
		HasDecay:         true,
		DecayOrigin:      origin,
		DecayScale:       168 * time.Hour,
		DecayValue:       0.5,
		HasPopularity:    true,
		PopularityFactor: 1.2,
		Size:             100,
	}

	body := buildSearchBody(query)

	assert.Equal(t, 100, body["size"])

	functionScore := body["query"].(map[string]interface{})["function_score"].(map[string]interface{})
	assert.Equal(t, "sum", functionScore["score_mode"])
	assert.Equal(t, "sum", functionScore["boost_mode"])

	base := functionScore["query"].(map[string]interface{})
	multiMatch, ok := base["multi_match"].(map[string]interface{})
	require.True(t, ok, "base clause must be multi_match")
	assert.Equal(t, "bach cello", multiMatch["query"])
	assert.Equal(t, []string{"title^3", "body"}, multiMatch["fields"])

	functions := functionScore["functions"].([]map[string]interface{})
	require.Len(t, functions, 4)

	tagFilter := functions[0]["filter"].(map[string]interface{})["terms"].(map[string]interface{})
	assert.Equal(t, []string{"bach", "cello"}, tagFilter["tags"])
	assert.Equal(t, 2.0, functions[0]["weight"])

	authorFilter := functions[1]["filter"].(map[string]interface{})["terms"].(map[string]interface{})
	assert.Equal(t, []string{"author-a"}, authorFilter["authorId"])
	assert.Equal(t, 3.0, functions[1]["weight"])

	gauss := functions[2]["gauss"].(map[string]interface{})["createdAt"].(map[string]interface{})
	assert.Equal(t, "2026-03-01T12:00:00Z", gauss["origin"])
	assert.Equal(t, "604800s", gauss["scale"])
	assert.Equal(t, 0.5, gauss["decay"])

	popularity := functions[3]["field_value_factor"].(map[string]interface{})
	assert.Equal(t, "likeCount", popularity["field"])
	assert.Equal(t, "log1p", popularity["modifier"])
	assert.Equal(t, 1.2, popularity["factor"])
	assert.Equal(t, 0, popularity["missing"])
}

func TestBuildSearchBody_EmptyTextUsesMatchAll(t *testing.T) {
	body := buildSearchBody(ScoringQueryDriver{Size: 100})

	functionScore := body["query"].(map[string]interface{})["function_score"].(map[string]interface{})
	base := functionScore["query"].(map[string]interface{})
	_, ok := base["match_all"]
	require.True(t, ok, "empty query text must fall back to match_all")

	functions := functionScore["functions"].([]map[string]interface{})
	assert.Empty(t, functions)
}

func TestBuildSearchBody_SkipsAbsentBoosts(t *testing.T) {
	query := ScoringQueryDriver{
		QueryText:     "opera",
		HasDecay:      true,
		DecayOrigin:   time.Now().UTC(),
		DecayScale:    168 * time.Hour,
		DecayValue:    0.5,
		HasPopularity: true,
		Size:          100,
	}

	body := buildSearchBody(query)

	functionScore := body["query"].(map[string]interface{})["function_score"].(map[string]interface{})
	functions := functionScore["functions"].([]map[string]interface{})
	require.Len(t, functions, 2)
	assert.Contains(t, functions[0], "gauss")
	assert.Contains(t, functions[1], "field_value_factor")
}

func TestESDuration(t *testing.T) {
	assert.Equal(t, "604800s", esDuration(168*time.Hour))
	assert.Equal(t, "86400s", esDuration(24*time.Hour))
	assert.Equal(t, "0s", esDuration(0))
}
