// Package realtime pushes notifications to connected browsers over WebSocket.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/metrics"
	models "field-ministry/campo/internal/models/gorm"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
	broadcastQueue = 64
)

// Event is the envelope written to every socket.
type Event struct {
	Type         string               `json:"type"`
	Notification *models.Notification `json:"notification,omitempty"`
}

type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

type broadcast struct {
	payload []byte
	// nil targets means every connected client.
	targets map[string]struct{}
}

// Hub tracks connected clients and fans out events. All client bookkeeping
// happens on the Run goroutine.
type Hub struct {
	upgrader   websocket.Upgrader
	register   chan *client
	unregister chan *client
	broadcast  chan broadcast
	done       chan struct{}
	metrics    *metrics.MetricsRegistry
}

// NewHub builds a hub accepting upgrades from allowedOrigins. An empty list
// accepts same-origin requests only.
func NewHub(allowedOrigins []string, metricsReg *metrics.MetricsRegistry) *Hub {
	h := &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan broadcast, broadcastQueue),
		done:       make(chan struct{}),
		metrics:    metricsReg,
	}
	if len(allowedOrigins) > 0 {
		allowed := make(map[string]struct{}, len(allowedOrigins))
		for _, o := range allowedOrigins {
			allowed[o] = struct{}{}
		}
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
	return h
}

// Run owns the client set until ctx is cancelled, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	clients := make(map[*client]struct{})

	drop := func(c *client) {
		if _, ok := clients[c]; !ok {
			return
		}
		delete(clients, c)
		close(c.send)
		if h.metrics != nil {
			h.metrics.FeedClients.Dec()
		}
	}

	for {
		select {
		case <-ctx.Done():
			for c := range clients {
				drop(c)
			}
			logging.Info("Notification feed stopped")
			return nil

		case c := <-h.register:
			clients[c] = struct{}{}
			if h.metrics != nil {
				h.metrics.FeedClients.Inc()
			}

		case c := <-h.unregister:
			drop(c)

		case msg := <-h.broadcast:
			for c := range clients {
				if msg.targets != nil {
					if _, ok := msg.targets[c.userID]; !ok {
						continue
					}
				}
				select {
				case c.send <- msg.payload:
				default:
					logging.Warn("Feed client too slow, disconnecting", "user_id", c.userID)
					drop(c)
				}
			}
		}
	}
}

func (h *Hub) PublishGlobal(n *models.Notification) {
	h.enqueue(n, nil)
}

func (h *Hub) PublishToUsers(userIDs []string, n *models.Notification) {
	if len(userIDs) == 0 {
		return
	}
	targets := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		targets[id] = struct{}{}
	}
	h.enqueue(n, targets)
}

// enqueue never blocks the caller; events are dropped when the queue is full
// or the hub has stopped.
func (h *Hub) enqueue(n *models.Notification, targets map[string]struct{}) {
	payload, err := json.Marshal(Event{Type: "notification", Notification: n})
	if err != nil {
		logging.Error("Failed to encode feed event", "notification_id", n.ID, "error", err)
		return
	}
	select {
	case h.broadcast <- broadcast{payload: payload, targets: targets}:
	case <-h.done:
	default:
		logging.Warn("Feed queue full, dropping event", "notification_id", n.ID)
	}
}

// ServeWS upgrades the request and streams events for userID until the
// socket closes or the hub stops.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Debug("Feed connection closed", "user_id", c.userID, "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
