package model

import "time"

// Session binds an opaque bearer token to a player.
// Only a digest of the token is stored; the token itself lives with the client.
type Session struct {
	TokenDigest string
	PlayerID    PlayerID
	CreatedAt   time.Time
	ExpiresAt   time.Time
}
