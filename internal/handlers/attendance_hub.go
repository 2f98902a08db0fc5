package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the admin dashboard is served from a separate origin
	},
}

// LiveHub is the process-wide hub feeding check-in events to subscribed admin
// dashboards.
var LiveHub = NewHub()

// CheckinEvent is the payload broadcast for every successful check-in.
type CheckinEvent struct {
	StudentID   uint      `json:"studentId"`
	StudentName string    `json:"studentName"`
	SectionID   uint      `json:"sectionId"`
	SectionName string    `json:"sectionName"`
	CheckedInAt time.Time `json:"checkedInAt"`
}

type feedClient struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID uint
}

// Hub fans check-in events out to every connected dashboard.
type Hub struct {
	clients    map[uint]*feedClient
	broadcast  chan []byte
	register   chan *feedClient
	unregister chan *feedClient
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		clients:    make(map[uint]*feedClient),
	}
}

// Run owns the client set; it must be started once, before the router serves.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.userID] = client
			h.mu.Unlock()
			slog.Info("Live feed client connected", "user_id", client.userID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
			}
			h.mu.Unlock()
			slog.Info("Live feed client disconnected", "user_id", client.userID)

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the feed.
					close(client.send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish broadcasts a check-in event to all connected dashboards. Fire and
// forget: a marshalling failure is logged and the check-in proceeds.
func (h *Hub) Publish(event CheckinEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal check-in event", "error", err)
		return
	}
	h.broadcast <- data
}

// AttendanceFeedHandler upgrades the connection and subscribes the caller to
// the live check-in feed.
func AttendanceFeedHandler(c *gin.Context) {
	userID := c.GetUint("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("Websocket upgrade failed", "error", err, "user_id", userID)
		return
	}

	client := &feedClient{
		hub:    LiveHub,
		conn:   conn,
		send:   make(chan []byte, 16),
		userID: userID,
	}
	LiveHub.register <- client

	go client.writePump()
	go client.readPump()
}

func (cl *feedClient) writePump() {
	defer cl.conn.Close()
	for message := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; the feed is one-way. Reading is still
// required so close and ping frames are processed.
func (cl *feedClient) readPump() {
	defer func() {
		cl.hub.unregister <- cl
		cl.conn.Close()
	}()
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
