package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"feed-ranker/config"
	"feed-ranker/di"
	"feed-ranker/driver"
	"feed-ranker/logger"
	"feed-ranker/rest"
	"feed-ranker/server"

	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// Run initializes all components and starts the service. It blocks until
// ctx is cancelled, then performs graceful shutdown.
func Run(ctx context.Context) error {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := driver.NewDatabasePool(ctx)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer pool.Close()

	esClient, err := driver.NewElasticsearchClient(cfg.Elasticsearch)
	if err != nil {
		return fmt.Errorf("init elasticsearch: %w", err)
	}

	var cacheClient *redis.Client
	if cfg.Cache.Enabled {
		opts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		cacheClient = redis.NewClient(opts)
		defer cacheClient.Close()
	}

	components, err := di.NewApplicationComponents(pool, esClient, cacheClient, cfg)
	if err != nil {
		return fmt.Errorf("wire components: %w", err)
	}

	feedHandler := rest.NewFeedHandler(components.RecommendFeedUsecase)
	srv := server.New(cfg, feedHandler)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
