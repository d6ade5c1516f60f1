package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingEvent is pushed to a connected user when one of their bookings
// changes state.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID uuid.UUID `json:"booking_id"`
	Reference string    `json:"reference"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"start_time"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)

func init() {
	go RunHub()
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		}
	}
}

// NotifyUser delivers an event to the user's live connection, if any.
// Offline users are silently skipped; email covers them.
func NotifyUser(userID uuid.UUID, event BookingEvent) {
	clientsMu.RLock()
	conn, ok := clients[userID]
	clientsMu.RUnlock()
	if !ok {
		return
	}

	if err := conn.WriteJSON(event); err != nil {
		log.Printf("Error sending event to client %s: %v", userID, err)
		conn.Close()
		clientsMu.Lock()
		if cur, ok := clients[userID]; ok && cur == conn {
			delete(clients, userID)
		}
		clientsMu.Unlock()
	}
}
