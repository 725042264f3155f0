package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
)

// AnalyticsService computes aggregate reports over the stored trips.
type AnalyticsService interface {
	Overview(ctx context.Context) (models.OverviewStats, error)
	Hourly(ctx context.Context) ([]models.HourlyStats, error)
	Zones(ctx context.Context) ([]models.ZoneStats, error)
}

type Analytics struct {
	service AnalyticsService
	log     logger.Logger
}

func NewAnalytics(service AnalyticsService, log logger.Logger) *Analytics {
	return &Analytics{
		service: service,
		log:     log,
	}
}

// GetOverview godoc
// @Summary      Trip KPIs
// @Description  Overall trip analytics: totals, averages and delay rates
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  models.OverviewStats
// @Failure      500  {object}  map[string]any
// @Router       /analytics/overview [get]
func (h *Analytics) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Overview(ctx)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "overview failed", err)
		errorResponse(w, GetCode(err), "analytics error")
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		h.log.Error(ctx, "failed to write overview response", err)
	}
}

// GetHourly godoc
// @Summary      Hourly patterns
// @Description  Wait time and delay patterns per hour of day, always 24 buckets
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  models.HourlyStats
// @Failure      500  {object}  map[string]any
// @Router       /analytics/hourly [get]
func (h *Analytics) GetHourly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Hourly(ctx)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "hourly analytics failed", err)
		errorResponse(w, GetCode(err), "analytics error")
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		h.log.Error(ctx, "failed to write hourly response", err)
	}
}

// GetZones godoc
// @Summary      Zone patterns
// @Description  Per-zone performance for the 20 busiest pickup zones
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  models.ZoneStats
// @Failure      500  {object}  map[string]any
// @Router       /analytics/zones [get]
func (h *Analytics) GetZones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Zones(ctx)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "zone analytics failed", err)
		errorResponse(w, GetCode(err), "analytics error")
		return
	}

	// fewer than 20 zones is fine, an empty store yields an empty list
	if stats == nil {
		stats = []models.ZoneStats{}
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		h.log.Error(ctx, "failed to write zones response", err)
	}
}
