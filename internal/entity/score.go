package entity

import "fmt"

// MaxNameLen - fixed width of a player name in the shared score table.
const MaxNameLen = 32

type ScoreRecord struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// DefaultPlayerName - the name a worker registers for its slot.
func DefaultPlayerName(player int) string {
	return fmt.Sprintf("Player%d", player)
}
