// Package notify carries per-player messages over named pipes.
package notify

import "strconv"

const (
	DefaultPrefix = "/tmp/player_pipe_"

	// MessageSize - upper bound of one message including its NUL terminator.
	// It stays below PIPE_BUF, so each write lands whole or not at all.
	MessageSize = 256
)

// Path - the channel location for a player slot.
func Path(prefix string, player int) string {
	return prefix + strconv.Itoa(player)
}
