package core

import "sync"

// Client is a single live connection as seen by the hub. The userID
// and room fields are only touched by the connection's own read loop,
// so they need no lock of their own.
type Client struct {
	Ref    string
	Events chan *Event

	stall     chan struct{}
	stallOnce sync.Once

	userID string
	room   *Room
}

// NewClient constructs a client with a bounded outbound event queue.
func NewClient(ref string, queueSize int) *Client {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Client{
		Ref:    ref,
		Events: make(chan *Event, queueSize),
		stall:  make(chan struct{}),
	}
}

const defaultQueueSize = 16

// UserID returns the identity bound to the connection, if any.
func (c *Client) UserID() string {
	return c.userID
}

// Stalled is closed the first time the outbound queue overflows. The
// transport treats it as a teardown signal: a connection too slow to
// drain its queue is closed rather than left seated and deaf.
func (c *Client) Stalled() <-chan struct{} {
	return c.stall
}

// Reject queues an error event for this connection only.
func (c *Client) Reject(cerr *CoreError) {
	c.send(&Event{Kind: EventError, Err: cerr})
}

// send enqueues an event without blocking. A stalled connection loses
// the event instead of stalling the room it shares with its peer, and
// is flagged for teardown.
func (c *Client) send(ev *Event) {
	select {
	case c.Events <- ev:
	default:
		c.stallOnce.Do(func() { close(c.stall) })
	}
}
