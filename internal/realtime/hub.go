package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lcampos/notedeck/internal/logger"
	"github.com/lcampos/notedeck/internal/models"
)

const writeWait = 10 * time.Second

// Hub pushes change notifications to subscribed websocket clients.
// Consumers use the events to refresh views or drop cached content for the
// entities that changed. Delivery is best effort: a slow client gets
// disconnected instead of backpressuring broadcasts.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	log      *logger.Logger
}

type client struct {
	conn *websocket.Conn
	send chan models.Event
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: logger.Default().WithPrefix("realtime"),
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends ev to every connected client. Clients whose send buffer
// is full are dropped.
func (h *Hub) Broadcast(ev models.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- ev:
		default:
			h.log.Warn("dropping slow subscriber: kind=%s", ev.Kind)
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ServeWS upgrades the request and subscribes the connection until it
// closes. The read loop exists only to detect disconnects; clients do not
// send messages.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan models.Event, 16)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.Debug("subscriber connected, total=%d", h.ClientCount())

	go h.writeLoop(c)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	conn.Close()
	h.log.Debug("subscriber disconnected, total=%d", h.ClientCount())
}

func (h *Hub) writeLoop(c *client) {
	for ev := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(ev); err != nil {
			h.log.Debug("ws write error: %v", err)
			c.conn.Close()
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
