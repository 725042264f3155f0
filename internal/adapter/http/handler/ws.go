package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	adapterws "github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/ws"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
	wsHub "github.com/Temutjin2k/taxi-analytics-system/pkg/wsHub"
)

type Dashboard struct {
	serviceName string
	hub         *wsHub.ConnectionHub
	analytics   AnalyticsService
	upgrader    websocket.Upgrader
	log         logger.Logger
}

func NewDashboard(serviceName string, hub *wsHub.ConnectionHub, analytics AnalyticsService, allowedOrigins string, log logger.Logger) *Dashboard {
	return &Dashboard{
		serviceName: serviceName,
		hub:         hub,
		analytics:   analytics,
		upgrader: websocket.Upgrader{
			// the CORS middleware cannot reject a handshake, only withhold
			// headers, so the allowlist is applied here too
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(allowedOrigins, r.Header.Get("Origin"))
			},
		},
		log: log,
	}
}

// originAllowed mirrors the CORS origin allowlist for websocket handshakes.
// Requests without an Origin header come from non-browser clients and pass.
func originAllowed(allowed, origin string) bool {
	if origin == "" {
		return true
	}
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// HandleWS godoc
// @Summary      Live dashboard stream
// @Description  WebSocket feed pushing the overview snapshot on connect and on a fixed interval
// @Tags         Analytics
// @Router       /ws/analytics [get]
func (h *Dashboard) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "dashboard_ws_connect")

	clientID, err := uuid.New()
	if err != nil {
		internalErrorResponse(w, "failed to assign client id")
		return
	}

	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn(ctx, "websocket upgrade failed", "err", err.Error())
		return
	}

	// the connection outlives this request, tie it to the background context
	conn := wsHub.NewConn(context.Background(), clientID, wsConn)
	if err := h.hub.Add(conn); err != nil {
		h.log.Error(ctx, "failed to register dashboard client", err)
		_ = conn.Close()
		return
	}

	metrics.WebSocketConnectionsGauge.WithLabelValues(h.serviceName).Inc()
	defer metrics.WebSocketConnectionsGauge.WithLabelValues(h.serviceName).Dec()

	h.log.Info(ctx, "dashboard client connected", "client_id", clientID)

	// push a snapshot right away so the client does not wait a full interval
	if stats, err := h.analytics.Overview(ctx); err == nil {
		if err := conn.Send(adapterws.NewOverviewMessage(stats)); err != nil {
			h.log.Warn(ctx, "initial snapshot send failed", "err", err.Error())
		}
	}

	conn.Wait()
	_ = h.hub.Delete(clientID)

	h.log.Info(ctx, "dashboard client disconnected", "client_id", clientID)
}
