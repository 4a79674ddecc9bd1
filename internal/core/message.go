package core

import "time"

// Message is one entry in a room's append-only log. Once appended it
// is never mutated; snapshots hand out copies.
type Message struct {
	ID        string
	Content   string
	SenderID  string
	Timestamp time.Time
}
