package events

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/bistro-pos/models"
)

// Event types
const (
	EventOrderCreated = "order_created"
	EventOrderUpdate  = "order_update"
	EventItemUpdate   = "order_item_update"
	EventTableUpdate  = "table_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	role string
}

// Hub menampung semua client kitchen display (kitchen, cashier, admin)
// yang menerima broadcast perubahan order dan meja.
type Hub struct {
	clients map[string]client // client id -> connection
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[string]client),
}

// RegisterClient -> menambahkan connection ke set dengan role.
func RegisterClient(clientID string, conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[clientID] = client{conn: conn, role: role}
}

// UnregisterClient -> melepaskan connection.
func UnregisterClient(clientID string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	if c, ok := hub.clients[clientID]; ok {
		delete(hub.clients, clientID)
		c.conn.Close()
	}
}

// PublishOrderCreated -> menyiarkan order baru ke semua client.
func PublishOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

// PublishOrderUpdate -> menyiarkan perubahan status order.
func PublishOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// PublishItemUpdate -> menyiarkan perubahan status satu order item.
func PublishItemUpdate(item models.OrderItem) {
	broadcast(Message{Event: EventItemUpdate, Data: item})
}

// PublishTableUpdate -> menyiarkan perubahan status meja.
func PublishTableUpdate(tableID, statusID uint) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data: map[string]interface{}{
			"table_id":  tableID,
			"status_id": statusID,
		},
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for id, c := range hub.clients {
		if err := c.conn.WriteJSON(msg); err != nil {
			logrus.Warnf("Dropping event client %s: %v", id, err)
			c.conn.Close()
			delete(hub.clients, id)
		}
	}
}
