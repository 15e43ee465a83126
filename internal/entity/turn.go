package entity

import "fmt"

const (
	OutcomeContinue = "continue"
	OutcomeWin      = "win"
	OutcomeDraw     = "draw"
)

// TurnResult - what a committed forced move did to the game.
type TurnResult struct {
	Player  int    `json:"player"`
	Symbol  byte   `json:"symbol"`
	Cell    Cell   `json:"cell"`
	Outcome string `json:"outcome"`
	Epoch   uint32 `json:"epoch"`
}

func (that *TurnResult) IsWin() bool {
	return that.Outcome == OutcomeWin
}

func (that *TurnResult) IsDraw() bool {
	return that.Outcome == OutcomeDraw
}

// MoveMessage - the line sent to the event log and the player's channel.
func (that *TurnResult) MoveMessage() string {
	return fmt.Sprintf("Player %d placed %c at (%d,%d)", that.Player, that.Symbol, that.Cell.Row, that.Cell.Col)
}

// OutcomeMessage - the follow-up line for a finished game, empty while the game continues.
func (that *TurnResult) OutcomeMessage() string {
	switch that.Outcome {
	case OutcomeWin:
		return fmt.Sprintf("Player %d WINS!", that.Player)
	case OutcomeDraw:
		return "Game Draw!"
	default:
		return ""
	}
}
