package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxParticipants caps room membership. Rooms pair exactly two peers.
const maxParticipants = 2

// Room is an ephemeral chat session keyed by a short code. Its mutex
// serializes membership changes and message traffic for this room
// only; traffic in one room never waits on another.
type Room struct {
	Code string

	mu           sync.Mutex
	participants []*Client
	log          []Message
	closed       bool
}

func newRoom(code string) *Room {
	return &Room{Code: code}
}

// join admits a client when a slot is free. The joiner receives the
// room snapshot, then every member including the joiner receives the
// updated participant count. A closed room reports not-found: it has
// already been reclaimed even if a caller still holds a pointer.
func (r *Room) join(c *Client) *CoreError {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return NewError(ErrCodeRoomNotFound, "room "+r.Code+" not found")
	}
	if len(r.participants) >= maxParticipants {
		return NewError(ErrCodeRoomFull, "room "+r.Code+" is full")
	}

	r.participants = append(r.participants, c)

	history := make([]Message, len(r.log))
	copy(history, r.log)
	c.send(&Event{Kind: EventRoomJoined, Code: r.Code, Messages: history})

	count := len(r.participants)
	for _, p := range r.participants {
		p.send(&Event{Kind: EventUserJoined, Code: r.Code, Count: count})
	}
	return nil
}

// leave removes a client. Remaining members get a presence update;
// when the last one goes the room closes and notifies nobody.
func (r *Room) leave(c *Client) (removed, empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.participants {
		if p == c {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return false, false
	}

	count := len(r.participants)
	if count == 0 {
		r.closed = true
		return true, true
	}
	for _, p := range r.participants {
		p.send(&Event{Kind: EventUserLeft, Code: r.Code, Count: count})
	}
	return true, false
}

// post appends a message and fans it out to every current member,
// sender included. ID and timestamp are assigned under the room lock,
// so the fan-out order every member observes is the append order.
func (r *Room) post(senderID, text string) Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := Message{
		ID:        uuid.NewString(),
		Content:   text,
		SenderID:  senderID,
		Timestamp: time.Now().UTC(),
	}
	r.log = append(r.log, msg)

	for _, p := range r.participants {
		p.send(&Event{Kind: EventNewMessage, Code: r.Code, Message: msg})
	}
	return msg
}
