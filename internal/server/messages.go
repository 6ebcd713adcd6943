package server

// MessageType identifies a WebSocket message.
type MessageType string

const (
	MessageTypeGenerate MessageType = "generate"
	MessageTypeLoad     MessageType = "load"
	MessageTypeList     MessageType = "list"
	MessageTypeMap      MessageType = "map"
	MessageTypeMaps     MessageType = "maps"
	MessageTypeError    MessageType = "error"
)

// BaseMessage is the envelope every message travels in.
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

// GenerateMessage asks the server to build a map. Params take the same keys
// as the command line flags; a non-empty name persists the result.
type GenerateMessage struct {
	Params map[string]string `json:"params"`
	Name   string            `json:"name,omitempty"`
}

// LoadMessage asks for a previously saved map.
type LoadMessage struct {
	Name string `json:"name"`
}

// MapsMessage lists the saved map names.
type MapsMessage struct {
	Names []string `json:"names"`
}

// ErrorMessage reports a failed request.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
