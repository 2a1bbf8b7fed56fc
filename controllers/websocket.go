package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ylk14/SmartPlant-sub001/models"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans new readings and alerts out to connected dashboard clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client goes away.
func (a *API) HandleWebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	a.Hub.add(conn)
	defer func() {
		a.Hub.remove(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// BroadcastReading sends a freshly persisted reading to all clients, plus a
// notification when the reading raised alerts.
func (h *Hub) BroadcastReading(reading models.Reading, alerts []models.Alert) {
	h.broadcast(map[string]interface{}{
		"event":   "reading",
		"reading": reading,
	})
	if len(alerts) > 0 {
		h.broadcast(map[string]interface{}{
			"event":   "alerts",
			"reading": reading,
			"alerts":  alerts,
		})
	}
}

func (h *Hub) broadcast(payload interface{}) {
	msg, _ := json.Marshal(payload)

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
