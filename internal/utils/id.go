package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewRef returns an opaque handle for a live connection. The prefix
// keeps refs recognizable in logs next to room codes and user ids.
func NewRef() string {
	const size = 8

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand is effectively infallible; fall back to the wall
		// clock rather than refusing the connection.
		return "conn-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return "conn-" + hex.EncodeToString(buf)
}
