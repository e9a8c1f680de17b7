package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"feed-ranker/domain"
	"feed-ranker/logger"
	"feed-ranker/usecase"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the verified user identity, set by the upstream
// auth layer. Token verification itself is not this service's concern.
const userIDHeader = "X-User-ID"

// FeedRecommender produces a ranked feed page for one user.
type FeedRecommender interface {
	Execute(ctx context.Context, userID string, requestedSize int, seenIDs []string) (*usecase.RecommendFeedResult, error)
}

// FeedHandler exposes the recommendation pipeline over HTTP.
type FeedHandler struct {
	recommender FeedRecommender
}

func NewFeedHandler(recommender FeedRecommender) *FeedHandler {
	return &FeedHandler{recommender: recommender}
}

// RecommendationsResponse is the public response shape.
type RecommendationsResponse struct {
	Items            []domain.RankedFeedItem `json:"items"`
	AlgorithmID      string                  `json:"algorithm_id"`
	SignalComponents []string                `json:"signal_components"`
	RequestedSize    int                     `json:"requested_size"`
}

// GetRecommendations handles GET /v1/feed/recommendations.
func (h *FeedHandler) GetRecommendations(c echo.Context) error {
	ctx := c.Request().Context()

	userID := c.Request().Header.Get(userIDHeader)

	size := usecase.DefaultPageSize
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse("size must be an integer"))
		}
		size = parsed
	}

	result, err := h.recommender.Execute(ctx, userID, size, parseSeenIDs(c.QueryParam("seen")))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, RecommendationsResponse{
		Items:            result.Items,
		AlgorithmID:      result.AlgorithmID,
		SignalComponents: result.SignalComponents,
		RequestedSize:    result.RequestedSize,
	})
}

func (h *FeedHandler) mapError(c echo.Context, err error) error {
	ctx := c.Request().Context()

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		logger.Logger.WarnContext(ctx, "invalid recommendation request", "err", err)
		return c.JSON(http.StatusBadRequest, errorResponse(validationErr.Error()))
	}

	var retrievalErr *domain.RetrievalError
	if errors.As(err, &retrievalErr) {
		logger.Logger.ErrorContext(ctx, "scoring engine unavailable", "err", err)
		return c.JSON(http.StatusServiceUnavailable, errorResponse("feed temporarily unavailable"))
	}

	logger.Logger.ErrorContext(ctx, "recommendation failed", "err", err)
	return c.JSON(http.StatusInternalServerError, errorResponse("internal server error"))
}

// HandleHealth reports service liveness.
func HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "feed-ranker",
	})
}

func parseSeenIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func errorResponse(message string) map[string]string {
	return map[string]string{"error": message}
}
