package di

import (
	"feed-ranker/config"
	"feed-ranker/domain"
	"feed-ranker/driver"
	"feed-ranker/gateway"
	"feed-ranker/usecase"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ApplicationComponents struct {
	RecommendFeedUsecase *usecase.RecommendFeedUsecase
}

// NewApplicationComponents wires drivers, gateways and usecases.
// cacheClient may be nil; the social graph gateway then reads straight
// from Postgres.
func NewApplicationComponents(pool *pgxpool.Pool, esClient *elasticsearch.Client, cacheClient *redis.Client, cfg *config.Config) (*ApplicationComponents, error) {
	scoringConfig, err := domain.NewScoringConfig(
		cfg.Ranking.TagBoostWeight,
		cfg.Ranking.FollowBoostWeight,
		cfg.Ranking.FreshnessHalfLife,
		cfg.Ranking.FreshnessDecay,
		cfg.Ranking.PopularityFactor,
	)
	if err != nil {
		return nil, err
	}

	dbDriver := driver.NewDatabaseDriver(pool)

	var cache gateway.SignalCache
	if cacheClient != nil {
		cache = driver.NewRedisSignalCacheDriver(cacheClient, cfg.Cache.TTL)
	}

	preferenceGateway := gateway.NewPreferenceGateway(dbDriver)
	activityGateway := gateway.NewSearchActivityGateway(dbDriver)
	socialGraphGateway := gateway.NewSocialGraphGateway(dbDriver, cache)

	esDriver := driver.NewElasticsearchDriver(esClient, cfg.Elasticsearch.Index)
	scoringEngineGateway := gateway.NewScoringEngineGateway(esDriver)

	signalsUsecase := usecase.NewBuildUserSignalsUsecase(preferenceGateway, activityGateway, socialGraphGateway)
	composer := usecase.NewScoringQueryComposer(scoringConfig)
	recommendUsecase := usecase.NewRecommendFeedUsecase(signalsUsecase, composer, scoringEngineGateway)

	return &ApplicationComponents{
		RecommendFeedUsecase: recommendUsecase,
	}, nil
}
