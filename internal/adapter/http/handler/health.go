package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
)

// StoreProber checks connectivity to the trip store.
type StoreProber interface {
	Count(ctx context.Context) (int, error)
}

type Health struct {
	serviceName string
	store       StoreProber
	log         logger.Logger
}

func NewHealth(serviceName string, store StoreProber, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		store:       store,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service and its trip store
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionHealthCheck)

	database := "connected"
	status := "healthy"
	httpStatus := http.StatusOK

	if _, err := h.store.Count(ctx); err != nil {
		h.log.Warn(ctx, "store probe failed", "err", err.Error())
		database = "disconnected"
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := envelope{
		"status":   status,
		"database": database,
		"system_info": map[string]string{
			"service-name": h.serviceName,
		},
	}

	if err := writeJSON(w, httpStatus, response, nil); err != nil {
		h.log.Error(ctx, "healthcheck", err)
		return
	}
}
