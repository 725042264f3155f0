package ws

import (
	"context"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	wsHub "github.com/Temutjin2k/taxi-analytics-system/pkg/wsHub"
)

// StatsSource provides the overview snapshot pushed to dashboard clients.
type StatsSource interface {
	Overview(ctx context.Context) (models.OverviewStats, error)
}

// StatsMessage is the frame sent to dashboard clients.
type StatsMessage struct {
	Type        string               `json:"type"`
	Data        models.OverviewStats `json:"data"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// NewOverviewMessage wraps an overview snapshot into a dashboard frame.
func NewOverviewMessage(stats models.OverviewStats) StatsMessage {
	return StatsMessage{
		Type:        "overview",
		Data:        stats,
		GeneratedAt: time.Now().UTC(),
	}
}

// Streamer periodically recomputes the overview and pushes it to every
// connected dashboard client.
type Streamer struct {
	hub      *wsHub.ConnectionHub
	source   StatsSource
	interval time.Duration
	log      logger.Logger
}

func NewStreamer(hub *wsHub.ConnectionHub, source StatsSource, interval time.Duration, log logger.Logger) *Streamer {
	return &Streamer{
		hub:      hub,
		source:   source,
		interval: interval,
		log:      log,
	}
}

// Run blocks until the context is cancelled.
func (s *Streamer) Run(ctx context.Context) {
	ctx = wrap.WithAction(ctx, types.ActionStatsBroadcast)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info(ctx, "stats streamer started", "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			s.log.Info(ctx, "stats streamer stopped")
			return
		case <-ticker.C:
			if s.hub.Count() == 0 {
				continue
			}

			stats, err := s.source.Overview(ctx)
			if err != nil {
				s.log.Warn(ctx, "skipping broadcast", "err", err.Error())
				continue
			}

			s.hub.Broadcast(NewOverviewMessage(stats))
		}
	}
}
