package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSMessage is one envelope pushed to connected planning-UI clients.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WSManager tracks connected WebSocket clients and broadcasts messages to
// them (handleAddMeasurement sends a measurement_added event carrying the
// updated session), following the teacher's
// internal/adapters/web/websocket/ws_manager.go.
type WSManager struct {
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

// NewWSManager constructs an empty WSManager.
func NewWSManager() *WSManager {
	return &WSManager{clients: make(map[*websocket.Conn]bool)}
}

// Start is a no-op hook kept symmetrical with the teacher's
// WSManager.Start(ctx); NetKit has no background event source to drain,
// since core decoding/heatmap calls are synchronous and pushed explicitly
// by the handler that invoked them.
func (m *WSManager) Start(ctx context.Context) {
	<-ctx.Done()
}

// HandleWebSocket upgrades an HTTP connection and registers it for
// broadcasts until the client disconnects.
func (m *WSManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("api.ws_upgrade_failed", "error", err.Error())
		return
	}

	m.mu.Lock()
	m.clients[conn] = true
	m.mu.Unlock()

	go func() {
		defer conn.Close()
		defer func() {
			m.mu.Lock()
			delete(m.clients, conn)
			m.mu.Unlock()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast pushes msg to every connected client, dropping any connection
// that errors on write.
func (m *WSManager) Broadcast(msg WSMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for conn := range m.clients {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(m.clients, conn)
		}
	}
}
