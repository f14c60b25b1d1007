package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a guest participant. There are no registered accounts.
type Player struct {
	ID          PlayerID
	DisplayName string
	CreatedAt   time.Time
}

// MaxDisplayNameLength is the longest display name accepted, in runes
const MaxDisplayNameLength = 20
