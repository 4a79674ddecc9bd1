package core

// Error codes for conditions the user can recover from. None of them
// are fatal to the process or to other connections.
const (
	ErrCodeRoomNotFound    = "room_not_found"
	ErrCodeRoomFull        = "room_full"
	ErrCodeNotInRoom       = "not_in_room"
	ErrCodeEmptyMessage    = "empty_message"
	ErrCodeInvalidIdentity = "invalid_identity"
	ErrCodeBadRequest      = "bad_request"
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

// NewError builds a CoreError with the given code and message.
func NewError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
