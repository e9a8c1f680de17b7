package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"feed-ranker/config"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchDriver executes scoring queries against the posts index.
type ElasticsearchDriver struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchDriver(client *elasticsearch.Client, index string) *ElasticsearchDriver {
	return &ElasticsearchDriver{
		client: client,
		index:  index,
	}
}

// NewElasticsearchClient builds a client from configuration.
func NewElasticsearchClient(cfg config.ElasticsearchConfig) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, &DriverError{
			Op:  "NewElasticsearchClient",
			Err: err.Error(),
		}
	}
	return client, nil
}

// SearchPosts runs the composed function-score query and returns hits in
// descending score order, as ranked by the engine.
func (d *ElasticsearchDriver) SearchPosts(ctx context.Context, query ScoringQueryDriver) ([]CandidateDriver, error) {
	body, err := json.Marshal(buildSearchBody(query))
	if err != nil {
		return nil, &DriverError{
			Op:  "SearchPosts",
			Err: "failed to encode query: " + err.Error(),
		}
	}

	res, err := d.client.Search(
		d.client.Search.WithContext(ctx),
		d.client.Search.WithIndex(d.index),
		d.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, &DriverError{
			Op:  "SearchPosts",
			Err: err.Error(),
		}
	}
	defer res.Body.Close()

	if res.IsError() {
		detail, _ := io.ReadAll(res.Body)
		return nil, &DriverError{
			Op:  "SearchPosts",
			Err: fmt.Sprintf("engine returned %s: %s", res.Status(), detail),
		}
	}

	var parsed esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, &DriverError{
			Op:  "SearchPosts",
			Err: "failed to decode response: " + err.Error(),
		}
	}

	hits := make([]CandidateDriver, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		hits = append(hits, CandidateDriver{
			ID:        hit.ID,
			AuthorID:  hit.Source.AuthorID,
			Title:     hit.Source.Title,
			Body:      hit.Source.Body,
			Tags:      hit.Source.Tags,
			LikeCount: hit.Source.LikeCount,
			CreatedAt: hit.Source.CreatedAt,
			Score:     hit.Score,
		})
	}
	return hits, nil
}

// buildSearchBody assembles the function_score query: a base relevance
// clause plus additive boost functions, combined by summation.
func buildSearchBody(query ScoringQueryDriver) map[string]interface{} {
	var base map[string]interface{}
	if query.QueryText == "" {
		base = map[string]interface{}{
			"match_all": map[string]interface{}{},
		}
	} else {
		base = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query.QueryText,
				"fields": []string{"title^3", "body"},
			},
		}
	}

	functions := make([]map[string]interface{}, 0, 4)
	if len(query.BoostTags) > 0 {
		functions = append(functions, map[string]interface{}{
			"filter": map[string]interface{}{
				"terms": map[string]interface{}{"tags": query.BoostTags},
			},
			"weight": query.TagWeight,
		})
	}
	if len(query.BoostAuthorIDs) > 0 {
		functions = append(functions, map[string]interface{}{
			"filter": map[string]interface{}{
				"terms": map[string]interface{}{"authorId": query.BoostAuthorIDs},
			},
			"weight": query.AuthorWeight,
		})
	}
	if query.HasDecay {
		functions = append(functions, map[string]interface{}{
			"gauss": map[string]interface{}{
				"createdAt": map[string]interface{}{
					"origin": query.DecayOrigin.Format(time.RFC3339),
					"scale":  esDuration(query.DecayScale),
					"decay":  query.DecayValue,
				},
			},
		})
	}
	if query.HasPopularity {
		functions = append(functions, map[string]interface{}{
			"field_value_factor": map[string]interface{}{
				"field":    "likeCount",
				"modifier": "log1p",
				"factor":   query.PopularityFactor,
				"missing":  0,
			},
		})
	}

	return map[string]interface{}{
		"size": query.Size,
		"query": map[string]interface{}{
			"function_score": map[string]interface{}{
				"query":      base,
				"functions":  functions,
				"score_mode": "sum",
				"boost_mode": "sum",
			},
		},
	}
}

// esDuration renders a duration in the engine's unit syntax.
func esDuration(d time.Duration) string {
	return fmt.Sprintf("%ds", int64(d.Seconds()))
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string  `json:"_id"`
			Score  float64 `json:"_score"`
			Source esPost  `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

type esPost struct {
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	LikeCount int       `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
}
