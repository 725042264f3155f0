package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// ConnectionHub хранит и управляет всеми активными WebSocket соединениями
type ConnectionHub struct {
	clients map[uuid.UUID]*Conn
	l       logger.Logger
	mu      sync.Mutex
	wg      sync.WaitGroup
}

func NewConnHub(l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		clients: make(map[uuid.UUID]*Conn),
		l:       l,
	}
}

// Add добавляет новое соединение в хаб.
// Если соединение с этим clientID уже существует — оно закрывается.
func (h *ConnectionHub) Add(newConn *Conn) error {
	if newConn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "add_ws_connection")

	if existing, ok := h.clients[newConn.clientID]; ok {
		h.l.Warn(ctx,
			"replacing existing connection",
			"client_id", existing.clientID,
		)
		if err := existing.Close(); err != nil {
			h.l.Warn(ctx,
				"failed to close existing conn",
				"client_id", existing.clientID,
				"err", err.Error(),
			)
		}
	} else {
		// при замене слот уже учтён, иначе Close() зависнет на wg.Wait
		h.wg.Add(1)
	}

	h.clients[newConn.clientID] = newConn

	return nil
}

// Delete удаляет и закрывает соединение по ID
func (h *ConnectionHub) Delete(clientID uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	conn, ok := h.clients[clientID]
	if !ok {
		h.l.Warn(ctx,
			"delete called for unknown client",
			"client_id", clientID,
		)
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"client_id", conn.clientID,
			"err", err.Error(),
		)
	}

	delete(h.clients, clientID)
	h.wg.Done()

	return nil
}

// Broadcast отправляет сообщение каждому подключённому клиенту.
// Мёртвые соединения удаляются из хаба.
func (h *ConnectionHub) Broadcast(msg any) {
	ctx := wrap.WithAction(context.Background(), "ws_broadcast")

	h.mu.Lock()
	clients := make([]*Conn, 0, len(h.clients))
	for _, conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.Unlock()

	for _, conn := range clients {
		if err := conn.Send(msg); err != nil {
			h.l.Warn(ctx,
				"dropping dead connection",
				"client_id", conn.clientID,
				"err", err.Error(),
			)
			_ = h.Delete(conn.clientID)
		}
	}
}

// Count возвращает число активных соединений
func (h *ConnectionHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close закрывает каждое websocket соединение
func (h *ConnectionHub) Close() {
	ctx := wrap.WithAction(context.Background(), "hub_close")

	// копируем клиентов под локом
	h.mu.Lock()
	clients := make([]*Conn, 0, len(h.clients))
	for _, conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.Unlock()
	// закрываем вне локов
	for _, conn := range clients {
		_ = h.Delete(conn.clientID)
	}

	h.wg.Wait()

	h.l.Info(ctx, "all websocket connections closed gracefully")
}
