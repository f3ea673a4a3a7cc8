package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// roomCodeAlphabet omits easily-confused characters (I, O, 0, 1).
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomCodeLen is the length of a classroom room code.
const RoomCodeLen = 6

// NewRoomCode generates a shareable classroom code.
func NewRoomCode() string {
	buf := make([]byte, RoomCodeLen)
	for i := range buf {
		buf[i] = roomCodeAlphabet[rand.IntN(len(roomCodeAlphabet))]
	}
	return string(buf)
}

// ParseRoomCode validates a code typed by a player joining a room.
// Input is case-insensitive.
func ParseRoomCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != RoomCodeLen {
		return "", fmt.Errorf("room code must be %d characters", RoomCodeLen)
	}
	for _, r := range code {
		if !strings.ContainsRune(roomCodeAlphabet, r) {
			return "", fmt.Errorf("room code has invalid character %q", r)
		}
	}
	return code, nil
}
