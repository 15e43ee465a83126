package apperror

import "errors"

var (
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrAlreadyMoved   = errors.New("player already moved this turn")
	ErrBoardFull      = errors.New("board is full")
	ErrNotInitialized = errors.New("shared state is not initialized")
	ErrRegionTooSmall = errors.New("shared region is too small")
	ErrChannelFull    = errors.New("notification channel is full")
	ErrNotFound       = errors.New("not found")
)
