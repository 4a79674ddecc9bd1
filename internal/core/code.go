package core

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"strings"
)

const (
	codeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultCodeLength = 6
	codeRetries       = 16
)

// NormalizeCode maps a user-supplied room code to canonical form.
// Codes are case-insensitive on input and uppercase everywhere else.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// newRoomCode draws random codes until one is free. When the retry
// budget runs out the length grows by one, so allocation stays bounded
// even with the code space crowded by live rooms.
func newRoomCode(length int, taken func(string) bool) string {
	for {
		for i := 0; i < codeRetries; i++ {
			code := randomCode(length)
			if !taken(code) {
				return code
			}
		}
		length++
	}
}

func randomCode(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand should not fail; fall back to math/rand
			// rather than refusing to allocate a room.
			sb.WriteByte(codeAlphabet[mrand.Intn(len(codeAlphabet))])
			continue
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String()
}
