package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"roomshare/internal/models"
)

const (
	wsWriteDeadline = 5 * time.Second
	wsReadLimit     = 1 << 10
)

// WebSocketManager fans newly inserted listings out to connected
// browsers. Delivery is at-least-once: a subscriber may also see the
// same row through a delta pull, so clients merge by id.
type WebSocketManager struct {
	clients    map[*websocket.Conn]struct{}
	broadcast  chan models.Listing
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan models.Listing, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Broadcast queues a listing for delivery to every subscriber.
func (ws *WebSocketManager) Broadcast(l models.Listing) {
	ws.broadcast <- l
}

// All operations on clients happen here.
func (ws *WebSocketManager) Run() {
	for {
		select {
		case conn := <-ws.register:
			ws.clients[conn] = struct{}{}
			log.Printf("WS subscribe, clients=%d", len(ws.clients))

		case conn := <-ws.unregister:
			if _, ok := ws.clients[conn]; ok {
				_ = conn.Close()
				delete(ws.clients, conn)
				log.Printf("WS unsubscribe, clients=%d", len(ws.clients))
			}

		case listing := <-ws.broadcast:
			for conn := range ws.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(listing); err != nil {
					log.Printf("WS broadcast error: %v", err)
					_ = conn.Close()
					delete(ws.clients, conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketHandler upgrades the connection and subscribes it to the
// insert feed. Subscribers send nothing; the read loop only watches
// for the close.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	conn.SetReadLimit(wsReadLimit)
	app.wsManager.register <- conn

	go func() {
		defer func() { app.wsManager.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
