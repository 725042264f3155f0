package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
)

// IngestService replaces the stored dataset with generated trips.
type IngestService interface {
	Ingest(ctx context.Context, n int) (int, error)
}

type Ingest struct {
	service      IngestService
	defaultTrips int
	log          logger.Logger
}

func NewIngest(service IngestService, defaultTrips int, log logger.Logger) *Ingest {
	return &Ingest{
		service:      service,
		defaultTrips: defaultTrips,
		log:          log,
	}
}

// IngestTaxiData godoc
// @Summary      Ingest taxi data
// @Description  Replaces the stored dataset with freshly generated sample trips
// @Tags         Ingest
// @Produce      json
// @Param        trips  query  int  false  "Number of trips to generate"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Security     BearerAuth
// @Router       /ingest-taxi-data [post]
func (h *Ingest) IngestTaxiData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := readPositiveIntQuery(r, "trips", h.defaultTrips)
	if err != nil {
		badRequestResponse(w, "trips must be a positive integer")
		return
	}

	loaded, err := h.service.Ingest(ctx, n)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "data ingestion failed", err)
		errorResponse(w, GetCode(err), "data ingestion failed")
		return
	}

	response := envelope{
		"message":      "Data ingestion completed",
		"trips_loaded": loaded,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.log.Error(ctx, "failed to write ingest response", err)
	}
}
