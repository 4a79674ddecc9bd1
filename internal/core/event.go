package core

// EventKind is a notification the hub emits to clients.
type EventKind int

const (
	// EventRoomCreated carries a fresh room code to the creator.
	EventRoomCreated EventKind = iota
	// EventRoomJoined delivers the room snapshot to a joiner.
	EventRoomJoined
	// EventNewMessage fans a chat message out to room members.
	EventNewMessage
	// EventUserJoined reports the participant count after a join.
	EventUserJoined
	// EventUserLeft reports the participant count after a leave.
	EventUserLeft
	// EventError reports a failed operation to its originator.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind     EventKind
	Code     string    // room code
	Count    int       // participant count for presence events
	Message  Message   // for EventNewMessage
	Messages []Message // room snapshot for EventRoomJoined
	Err      *CoreError
}
