package proto

import (
	"encoding/json"
	"time"
)

// Inbound is the envelope for events coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

const (
	InboundTypeSetUserID   = "set-user-id"
	InboundTypeCreateRoom  = "create-room"
	InboundTypeJoinRoom    = "join-room"
	InboundTypeSendMessage = "send-message"

	OutboundTypeRoomCreated = "room-created"
	OutboundTypeJoinedRoom  = "joined-room"
	OutboundTypeNewMessage  = "new-message"
	OutboundTypeUserJoined  = "user-joined"
	OutboundTypeUserLeft    = "user-left"
	OutboundTypeError       = "error"
)

// SetUserIDData binds a client-held identity to the connection.
type SetUserIDData struct {
	UserID string `json:"userId"`
}

// JoinRoomData requests admission to an existing room.
type JoinRoomData struct {
	RoomCode string `json:"roomCode"`
}

// SendMessageData submits a chat message. Only the text is trusted;
// room and sender come from connection state on the server.
type SendMessageData struct {
	RoomCode string `json:"roomCode,omitempty"`
	Message  string `json:"message"`
	UserID   string `json:"userId,omitempty"`
}

// Outbound is the envelope for events sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// RoomCreatedData carries a fresh room code back to the creator.
type RoomCreatedData struct {
	Code string `json:"code"`
}

// WireMessage is the wire shape of a chat message.
type WireMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	SenderID  string    `json:"senderId"`
	Timestamp time.Time `json:"timestamp"`
}

// JoinedRoomData is the joiner's snapshot of room state.
type JoinedRoomData struct {
	RoomCode string        `json:"roomCode"`
	Messages []WireMessage `json:"messages"`
}

// PresenceData reports the participant count after a membership change.
type PresenceData struct {
	UserCount int `json:"userCount"`
}

// ErrorData carries a human-readable failure message.
type ErrorData struct {
	Message string `json:"message"`
}
