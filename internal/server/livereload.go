package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const reloadMessage = "reload"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks live reload websocket clients.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	onChange func(float64)
}

// NewHub creates an empty hub. onChange, if set, receives the client
// count whenever it changes.
func NewHub(onChange func(float64)) *Hub {
	return &Hub{
		clients:  make(map[*websocket.Conn]struct{}),
		onChange: onChange,
	}
}

// ServeHTTP upgrades the request and keeps the client registered until it
// disconnects. Clients never send anything meaningful.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: websocket read: %v", err)
			}
			return
		}
	}
}

// Broadcast sends msg to every client and returns how many received it.
// Clients that fail are dropped.
func (h *Hub) Broadcast(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			conn.Close()
			delete(h.clients, conn)
			continue
		}
		sent++
	}
	h.changed()
	return sent
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
	h.changed()
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
	h.changed()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
	h.changed()
}

// changed must be called with mu held.
func (h *Hub) changed() {
	if h.onChange != nil {
		h.onChange(float64(len(h.clients)))
	}
}
