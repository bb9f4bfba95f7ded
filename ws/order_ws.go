package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/SineMag/Eatery/entity"
)

// OrderEvent is what admin dashboards receive whenever the ledger changes.
type OrderEvent struct {
	Type  string       `json:"type"` // "order"
	Order entity.Order `json:"order"`
}

// OrderHub pushes order lifecycle events to connected admin dashboards, so
// they see new orders and status changes without polling.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	log        *slog.Logger
}

func NewOrderHub(log *slog.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					h.log.Warn("ws write failed", "error", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast is safe to call from any goroutine; it never blocks the caller
// past the channel buffer.
func (h *OrderHub) Broadcast(order entity.Order) {
	select {
	case h.broadcast <- OrderEvent{Type: "order", Order: order}:
	default:
		h.log.Warn("ws broadcast dropped, feed backlogged")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (role enforced by the auth middleware)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", "error", err)
		return
	}

	h.register <- conn

	// drain reads so pings and close frames are processed
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
