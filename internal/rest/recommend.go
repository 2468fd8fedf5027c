package rest

import (
	"context"
	"net/http"
	"time"

	"scentMatch/domain"
	"scentMatch/pkg/logger"
	"scentMatch/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	defaultTopK = 5
	defaultPref = "both"
	recoTimeout = 10 * time.Second
)

type (
	RecommendHandler struct {
		validate *validator.Validate
		service  RecommenderService
	}

	RecommenderService interface {
		RecommendByFragrances(ctx context.Context, liked []string, timePref domain.TimePreference, seasonPref domain.SeasonPreference, topK int, diversityFactor float64) ([]domain.Recommendation, error)
		RecommendByAccords(ctx context.Context, weights map[string]float64, timePref domain.TimePreference, seasonPref domain.SeasonPreference, topK int, diversityFactor float64) ([]domain.Recommendation, error)
		ListFragrances() []domain.FragranceSummary
		ListAccords() []string
		ReloadCatalog(ctx context.Context) (int, error)
	}

	FragranceRecommendationRequest struct {
		LikedFragrances []string `json:"liked_fragrances" validate:"required,min=1,max=10,dive,required"`
		TimePref        string   `json:"time_pref" validate:"omitempty,oneof=day night both"`
		SeasonPref      string   `json:"season_pref" validate:"omitempty,oneof=hot cold both"`
		DiversityFactor *float64 `json:"diversity_factor" validate:"omitempty,min=0,max=1"`
		TopK            int      `json:"top_k" validate:"omitempty,min=1,max=20"`
	}

	AccordRecommendationRequest struct {
		AccordPreferences map[string]float64 `json:"accord_preferences" validate:"required,min=1,max=10"`
		TimePref          string             `json:"time_pref" validate:"omitempty,oneof=day night both"`
		SeasonPref        string             `json:"season_pref" validate:"omitempty,oneof=hot cold both"`
		DiversityFactor   *float64           `json:"diversity_factor" validate:"omitempty,min=0,max=1"`
		TopK              int                `json:"top_k" validate:"omitempty,min=1,max=20"`
	}
)

func NewRecommendHandler(service RecommenderService) *RecommendHandler {
	return &RecommendHandler{
		validate: validator.New(),
		service:  service,
	}
}

// POST /api/v1/recommend-by-fragrances
func (h *RecommendHandler) RecommendByFragrances(c echo.Context) error {
	started := time.Now()

	var req FragranceRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	timePref, seasonPref, topK, diversity := requestDefaults(req.TimePref, req.SeasonPref, req.TopK, req.DiversityFactor)

	ctx, cancel := context.WithTimeout(c.Request().Context(), recoTimeout)
	defer cancel()

	recs, err := h.service.RecommendByFragrances(ctx, req.LikedFragrances, timePref, seasonPref, topK, diversity)
	if err != nil {
		logger.Error("recommend by fragrances failed", err)
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(started).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommend-by-accords
func (h *RecommendHandler) RecommendByAccords(c echo.Context) error {
	started := time.Now()

	var req AccordRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	timePref, seasonPref, topK, diversity := requestDefaults(req.TimePref, req.SeasonPref, req.TopK, req.DiversityFactor)

	ctx, cancel := context.WithTimeout(c.Request().Context(), recoTimeout)
	defer cancel()

	recs, err := h.service.RecommendByAccords(ctx, req.AccordPreferences, timePref, seasonPref, topK, diversity)
	if err != nil {
		logger.Error("recommend by accords failed", err)
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(started).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/fragrances
func (h *RecommendHandler) ListFragrances(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"fragrances": h.service.ListFragrances(),
	})
}

// GET /api/v1/accords
func (h *RecommendHandler) ListAccords(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"accords": h.service.ListAccords(),
	})
}

// POST /api/v1/admin/catalog/reload
func (h *RecommendHandler) ReloadCatalog(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), recoTimeout)
	defer cancel()

	count, err := h.service.ReloadCatalog(ctx)
	if err != nil {
		logger.Error("catalog reload failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "catalog reloaded",
		"items":   count,
	})
}

func requestDefaults(timePref, seasonPref string, topK int, diversity *float64) (domain.TimePreference, domain.SeasonPreference, int, float64) {
	if timePref == "" {
		timePref = defaultPref
	}
	if seasonPref == "" {
		seasonPref = defaultPref
	}
	if topK <= 0 {
		topK = defaultTopK
	}
	df := 0.0
	if diversity != nil {
		df = *diversity
	}
	return domain.TimePreference(timePref), domain.SeasonPreference(seasonPref), topK, df
}
