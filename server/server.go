package server

import (
	"context"

	"feed-ranker/config"
	"feed-ranker/logger"
	appmiddleware "feed-ranker/middleware"
	"feed-ranker/rest"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
}

func New(cfg *config.Config, feedHandler *rest.FeedHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(appmiddleware.Metrics())

	e.GET("/v1/health", rest.HandleHealth)
	e.GET("/v1/feed/recommendations", feedHandler.GetRecommendations)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Server.ReadHeaderTimeout = cfg.HTTP.ReadHeaderTimeout

	return &Server{
		echo:   e,
		config: cfg,
	}
}

func (s *Server) Start() error {
	logger.Logger.Info("starting HTTP server", "addr", s.config.HTTP.Addr)
	return s.echo.Start(s.config.HTTP.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger.Logger.Info("shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
