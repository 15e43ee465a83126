package gamestate

import "github.com/rocketscienceinc/tictactoe-arena/internal/entity"

// Byte layout of the shared game record. All integers are little endian.
const (
	offMagic     = 0
	offLock      = 4
	offSequence  = 8
	offTurn      = 12
	offMovesMade = 16
	offLastMove  = 20
	offActive    = 24
	offBoard     = offActive + entity.MaxPlayers
	offOpened    = (offBoard + entity.BoardCells + 3) &^ 3

	// Size - bytes the record occupies in the region, padded to 8.
	Size = (offOpened + 4 + 7) &^ 7

	magic uint32 = 0x54545431 // "TTT1"
)
