package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gorilla/websocket"
)

// connection wraps a WebSocket and serializes writes through a channel.
type connection struct {
	ws   *websocket.Conn
	send chan []byte
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{
		ws:   ws,
		send: make(chan []byte, 256),
	}
}

// messageHandler processes messages arriving on a connection.
type messageHandler interface {
	handleMessage(conn *connection, message []byte)
}

// readPump reads messages from the WebSocket until the peer disconnects.
func (c *connection) readPump(handler messageHandler) {
	defer c.ws.Close()
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}
		handler.handleMessage(c, message)
	}
}

// writePump drains the send channel onto the WebSocket.
func (c *connection) writePump() {
	defer c.ws.Close()
	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			w.Close()
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// sendMessage queues a message for delivery to the peer.
func (c *connection) sendMessage(msgType MessageType, payload any) error {
	msg := BaseMessage{Type: msgType, Payload: payload}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %v", err)
	}
	select {
	case c.send <- data:
		return nil
	default:
		return fmt.Errorf("send buffer full")
	}
}
