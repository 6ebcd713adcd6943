// Package server exposes map generation and retrieval over WebSocket.
// Clients send JSON envelopes on /ws; freshly generated maps are broadcast
// to every connected client, loads and listings answer the requester only.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"terramap/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server tracks the connected clients and answers their requests.
type Server struct {
	store store.Store

	mu      sync.Mutex
	clients map[*connection]bool
}

// New returns a server backed by st. A nil store disables persistence;
// generate requests still work but load, list and named saves fail.
func New(st store.Store) *Server {
	return &Server{
		store:   st,
		clients: make(map[*connection]bool),
	}
}

// Handler returns the HTTP handler with the WebSocket endpoint mounted
// at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	conn := newConnection(ws)
	s.addClient(conn)
	go conn.writePump()
	conn.readPump(&clientHandler{store: s.store, hub: s})
	s.removeClient(conn)
}

func (s *Server) addClient(conn *connection) {
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
}

// removeClient drops the connection and closes its send channel, which lets
// the write pump drain and finish with a close message.
func (s *Server) removeClient(conn *connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clients[conn] {
		delete(s.clients, conn)
		close(conn.send)
	}
}

// broadcast queues a message for every connected client. Clients whose send
// buffer is full miss the message rather than stall the rest.
func (s *Server) broadcast(msgType MessageType, payload any) {
	data, err := json.Marshal(BaseMessage{Type: msgType, Payload: payload})
	if err != nil {
		log.Printf("Failed to marshal broadcast: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		select {
		case conn.send <- data:
		default:
		}
	}
}
