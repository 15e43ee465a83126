package entity

import (
	"errors"
	"fmt"
)

const (
	BoardSize  = 3
	BoardCells = BoardSize * BoardSize
	MaxPlayers = 3

	EmptyCell byte = ' '
)

var (
	ErrInvalidPlayer = errors.New("invalid player slot")

	// WinCombos - the 8 lines of a 3x3 board as row-major cell indices.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board - row-major 3x3 grid. The byte layout is the one stored in shared memory.
type Board [BoardCells]byte

// Cell - a board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Symbol - returns the mark of the given player slot: X, Y, Z.
func Symbol(player int) byte {
	return 'X' + byte(player)
}

// ValidatePlayer - checks that the slot is within the fixed player set.
func ValidatePlayer(player int) error {
	if player < 0 || player >= MaxPlayers {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	return nil
}

func NewBoard() Board {
	var board Board
	board.Reset()

	return board
}

func (that *Board) Reset() {
	for i := range that {
		that[i] = EmptyCell
	}
}

func (that Board) At(row, col int) byte {
	return that[row*BoardSize+col]
}

// PlaceForced - puts the symbol in the first empty cell in row-major order.
// Returns false without touching the board when it is full.
func (that *Board) PlaceForced(symbol byte) (Cell, bool) {
	for i, cell := range that {
		if cell == EmptyCell {
			that[i] = symbol
			return Cell{Row: i / BoardSize, Col: i % BoardSize}, true
		}
	}

	return Cell{}, false
}

// HasWinner - true if any row, column or diagonal is entirely the symbol.
func (that Board) HasWinner(symbol byte) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == symbol && that[combo[1]] == symbol && that[combo[2]] == symbol {
			return true
		}
	}

	return false
}

func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// String - renders the board as three rows separated by newlines.
func (that Board) String() string {
	out := make([]byte, 0, BoardCells+BoardSize)
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			out = append(out, '\n')
		}
		out = append(out, that[row*BoardSize:(row+1)*BoardSize]...)
	}

	return string(out)
}
