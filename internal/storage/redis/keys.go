package redis

import (
	"fmt"

	"github.com/mcoot/numberguess/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "numguess"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// sessionKey returns the Redis key for a Session
func sessionKey(tokenDigest string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, tokenDigest)
}

// gameKey returns the Redis key for a player's current game
func gameKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, playerID)
}
