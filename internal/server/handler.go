package server

import (
	"encoding/json"
	"fmt"
	"log"

	"terramap/internal/store"
	"terramap/internal/terrain"
)

// clientHandler serves one client's requests for the lifetime of its
// connection. Generated maps go out through the hub so every viewer sees
// them.
type clientHandler struct {
	store store.Store
	hub   *Server
}

func (h *clientHandler) handleMessage(conn *connection, message []byte) {
	var base BaseMessage
	if err := json.Unmarshal(message, &base); err != nil {
		log.Printf("Failed to parse message: %v", err)
		h.sendError(conn, "BAD_MESSAGE", "message is not valid JSON")
		return
	}

	switch base.Type {
	case MessageTypeGenerate:
		h.handleGenerate(conn, base.Payload)
	case MessageTypeLoad:
		h.handleLoad(conn, base.Payload)
	case MessageTypeList:
		h.handleList(conn)
	default:
		h.sendError(conn, "UNKNOWN_TYPE", fmt.Sprintf("unknown message type %q", base.Type))
	}
}

func (h *clientHandler) handleGenerate(conn *connection, payload any) {
	var req GenerateMessage
	if !h.decode(conn, payload, &req) {
		return
	}

	cfg := terrain.FromMap(req.Params)
	t, err := terrain.GenerateWithConfig(cfg)
	if err != nil {
		h.sendError(conn, "GENERATE_FAILED", err.Error())
		return
	}

	m := store.Snapshot(t, req.Name)
	if req.Name != "" {
		if h.store == nil {
			h.sendError(conn, "NO_STORE", "server has no map store configured")
			return
		}
		if err := h.store.Save(m); err != nil {
			h.sendError(conn, "SAVE_FAILED", err.Error())
			return
		}
	}
	h.hub.broadcast(MessageTypeMap, m)
}

func (h *clientHandler) handleLoad(conn *connection, payload any) {
	var req LoadMessage
	if !h.decode(conn, payload, &req) {
		return
	}
	if h.store == nil {
		h.sendError(conn, "NO_STORE", "server has no map store configured")
		return
	}
	m, err := h.store.Load(req.Name)
	if err != nil {
		h.sendError(conn, "LOAD_FAILED", err.Error())
		return
	}
	conn.sendMessage(MessageTypeMap, m)
}

func (h *clientHandler) handleList(conn *connection) {
	if h.store == nil {
		h.sendError(conn, "NO_STORE", "server has no map store configured")
		return
	}
	names, err := h.store.List()
	if err != nil {
		h.sendError(conn, "LIST_FAILED", err.Error())
		return
	}
	conn.sendMessage(MessageTypeMaps, MapsMessage{Names: names})
}

// decode converts a raw payload into the expected request struct.
func (h *clientHandler) decode(conn *connection, payload any, out any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		h.sendError(conn, "BAD_PAYLOAD", "payload cannot be read")
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		h.sendError(conn, "BAD_PAYLOAD", fmt.Sprintf("malformed payload: %v", err))
		return false
	}
	return true
}

func (h *clientHandler) sendError(conn *connection, code, message string) {
	conn.sendMessage(MessageTypeError, ErrorMessage{Code: code, Message: message})
}
