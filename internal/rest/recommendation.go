package rest

import (
	"context"
	"myMediasStore/business/recommendation"
	"myMediasStore/domain"
	"myMediasStore/pkg/logger"
	"myMediasStore/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const maxRecommendationLimit = 20

type (
	RecommendationHandler struct {
		validate              *validator.Validate
		recommendationService RecommendationService
		defaultLimit          int
	}

	RecommendationService interface {
		GetRecommendations(ctx context.Context, sessionID, productCode string, limit int) domain.RecommendationResult
		RecordClick(ctx context.Context, sessionID, productCode string)
	}

	ClickRequest struct {
		ProductCode string `json:"product_code" validate:"required"`
	}

	RecommendationResponse struct {
		ProductCode     string                  `json:"product_code"`
		Recommendations []domain.Recommendation `json:"recommendations"`
		Fallback        bool                    `json:"fallback"`
		Count           int                     `json:"count"`
	}
)

func NewRecommendationHandler(svc RecommendationService, defaultLimit int) *RecommendationHandler {
	if defaultLimit <= 0 {
		defaultLimit = recommendation.DefaultLimit
	}

	return &RecommendationHandler{
		validate:              validator.New(),
		recommendationService: svc,
		defaultLimit:          defaultLimit,
	}
}

// GET /api/v1/products/:code/recommendations?limit=4
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	start := time.Now()

	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	productCode := c.Param("code")
	if productCode == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing product code"})
	}

	limit := h.defaultLimit
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxRecommendationLimit {
			logger.Error("Invalid limit parameter", "limit", limitStr)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit parameter"})
		}
		limit = parsed
	}

	result := h.recommendationService.GetRecommendations(c.Request().Context(), sessionID, productCode, limit)

	source := "similarity"
	if result.Fallback {
		source = "fallback"
	}
	metrics.RecommendRequestsTotal.WithLabelValues(source).Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendationResponse{
		ProductCode:     productCode,
		Recommendations: result.Recommendations,
		Fallback:        result.Fallback,
		Count:           len(result.Recommendations),
	}))
}

// POST /api/v1/recommendations/click
func (h *RecommendationHandler) TrackClick(c echo.Context) error {
	sessionID, ok := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing session"})
	}

	var req ClickRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind click request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate click request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// Best-effort append; the service never reports failure back.
	h.recommendationService.RecordClick(c.Request().Context(), sessionID, req.ProductCode)
	metrics.RecommendClicksTotal.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("click recorded"))
}
