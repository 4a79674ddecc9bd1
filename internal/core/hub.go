package core

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Hub owns the code→room registry and coordinates room lifecycle for
// all connections. The registry lock is held only for map lookups and
// mutations; everything touching a single room's state happens under
// that room's own lock.
type Hub struct {
	log        *zerolog.Logger
	codeLength int

	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewHub builds an empty hub. codeLength <= 0 selects the default.
func NewHub(logger *zerolog.Logger, codeLength int) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if codeLength <= 0 {
		codeLength = defaultCodeLength
	}
	return &Hub{
		log:        logger,
		codeLength: codeLength,
		rooms:      make(map[string]*Room),
	}
}

// Register announces a new connection to the hub.
func (h *Hub) Register(c *Client) {
	h.log.Debug().Str("conn", c.Ref).Msg("connection registered")
}

// Unregister runs connection-close handling: the client leaves its
// room exactly once, then its event queue is closed so nothing can be
// delivered to it afterwards. Must run for graceful and abrupt closes
// alike; the transport loops have already stopped by the time it runs.
func (h *Hub) Unregister(c *Client) {
	h.Leave(c)
	close(c.Events)
	h.log.Debug().Str("conn", c.Ref).Msg("connection unregistered")
}

// SetUserID binds an identity to the connection. Re-binding the same
// value is a no-op; a different value applies to future messages only,
// since sender identity is captured when a message is appended.
func (h *Hub) SetUserID(c *Client, userID string) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		c.Reject(NewError(ErrCodeInvalidIdentity, "user id must not be empty"))
		return
	}
	c.userID = userID
	h.log.Debug().Str("conn", c.Ref).Str("user", userID).Msg("identity bound")
}

// CreateRoom allocates a room with the creator as sole participant.
// The code goes back to the creator only; nothing is broadcast.
func (h *Hub) CreateRoom(c *Client) {
	if c.userID == "" {
		c.Reject(NewError(ErrCodeInvalidIdentity, "set a user id before creating a room"))
		return
	}
	h.Leave(c)

	h.mu.Lock()
	code := newRoomCode(h.codeLength, func(candidate string) bool {
		_, exists := h.rooms[candidate]
		return exists
	})
	r := newRoom(code)
	r.participants = append(r.participants, c)
	h.rooms[code] = r
	h.mu.Unlock()

	c.room = r
	c.send(&Event{Kind: EventRoomCreated, Code: code})
	h.log.Info().Str("room", code).Str("user", c.userID).Msg("room created")
}

// JoinRoom admits the connection into an existing room by code. Any
// failure leaves the coordinator untouched: the caller keeps its
// current seat, and only a successful admission gives it up.
func (h *Hub) JoinRoom(c *Client, code string) {
	if c.userID == "" {
		c.Reject(NewError(ErrCodeInvalidIdentity, "set a user id before joining a room"))
		return
	}
	code = NormalizeCode(code)
	if code == "" {
		c.Reject(NewError(ErrCodeBadRequest, "room code is required"))
		return
	}

	h.mu.RLock()
	r := h.rooms[code]
	h.mu.RUnlock()

	if r == nil {
		c.Reject(NewError(ErrCodeRoomNotFound, "room "+code+" not found"))
		return
	}
	if r == c.room {
		c.Reject(NewError(ErrCodeBadRequest, "already in room "+code))
		return
	}
	if cerr := r.join(c); cerr != nil {
		c.Reject(cerr)
		return
	}

	prev := c.room
	c.room = r
	if prev != nil {
		h.leaveRoom(c, prev)
	}
	h.log.Info().Str("room", code).Str("user", c.userID).Msg("user joined room")
}

// SendMessage appends a message to the sender's current room and fans
// it out to all members, the sender included.
func (h *Hub) SendMessage(c *Client, text string) {
	r := c.room
	if r == nil {
		c.Reject(NewError(ErrCodeNotInRoom, "join a room before sending messages"))
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		c.Reject(NewError(ErrCodeEmptyMessage, "message must not be empty"))
		return
	}

	msg := r.post(c.userID, text)
	h.log.Debug().Str("room", r.Code).Str("msg", msg.ID).Str("user", c.userID).Msg("message delivered")
}

// Leave removes the connection from its current room, if any, and
// reclaims the room once it empties. Idempotent: a connection that is
// not in any room is a no-op.
func (h *Hub) Leave(c *Client) {
	r := c.room
	if r == nil {
		return
	}
	c.room = nil
	h.leaveRoom(c, r)
}

func (h *Hub) leaveRoom(c *Client, r *Room) {
	removed, empty := r.leave(c)
	if !removed {
		return
	}
	if empty {
		h.mu.Lock()
		delete(h.rooms, r.Code)
		h.mu.Unlock()
		h.log.Info().Str("room", r.Code).Msg("room reclaimed")
	}
}
