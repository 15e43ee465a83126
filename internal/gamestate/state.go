package gamestate

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/shm"
)

// State - the game record shared by the coordinator and every worker.
//
// All fields except the two epoch words are read and written only while the
// turn mutex is held. The epoch words are written under the mutex and read
// atomically by waiters. seq counts advances; opened trails it until the new
// turn is open for play.
type State struct {
	data   []byte
	mu     *shm.Mutex
	seq    *uint32
	opened *uint32
}

// Snapshot - a consistent copy of the record.
type Snapshot struct {
	Turn          int                     `json:"turn"`
	Sequence      uint32                  `json:"sequence"`
	MovesMade     int                     `json:"moves_made"`
	LastMoveEpoch uint32                  `json:"last_move_epoch"`
	Active        [entity.MaxPlayers]bool `json:"active"`
	Board         entity.Board            `json:"board"`
}

// Init - formats a fresh record in data. Only the creator of the region calls it,
// before any worker attaches. The first active slot holds the opening turn.
func Init(data []byte, active []int) (*State, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", apperror.ErrRegionTooSmall, len(data), Size)
	}

	if len(active) == 0 {
		return nil, fmt.Errorf("%w: no active players", entity.ErrInvalidPlayer)
	}

	for _, player := range active {
		if err := entity.ValidatePlayer(player); err != nil {
			return nil, err
		}
	}

	record := data[:Size]
	clear(record)

	for _, player := range active {
		record[offActive+player] = 1
	}

	first := entity.MaxPlayers
	for _, player := range active {
		first = min(first, player)
	}

	putUint32(record, offTurn, uint32(first))

	board := entity.NewBoard()
	copy(record[offBoard:], board[:])

	state := attach(record)
	atomic.StoreUint32(state.seq, 1)
	atomic.StoreUint32(state.opened, 1)
	atomic.StoreUint32(shm.Word(record, offMagic), magic)

	return state, nil
}

// Attach - binds to a record another process already formatted.
func Attach(data []byte) (*State, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", apperror.ErrRegionTooSmall, len(data), Size)
	}

	if atomic.LoadUint32(shm.Word(data, offMagic)) != magic {
		return nil, apperror.ErrNotInitialized
	}

	return attach(data[:Size]), nil
}

func attach(record []byte) *State {
	return &State{
		data:   record,
		mu:     shm.NewMutex(shm.Word(record, offLock)),
		seq:    shm.Word(record, offSequence),
		opened: shm.Word(record, offOpened),
	}
}

// Turn - the slot currently allowed to move.
func (that *State) Turn() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.turn()
}

// Sequence - the latest turn epoch open for play. Every scheduler advance
// starts a new epoch.
func (that *State) Sequence() uint32 {
	return atomic.LoadUint32(that.opened)
}

// AdvanceTurn - hands the turn to next, opens it and wakes waiting workers.
func (that *State) AdvanceTurn(next int) error {
	if err := entity.ValidatePlayer(next); err != nil {
		return err
	}

	that.mu.Lock()
	that.setTurn(next)
	atomic.StoreUint32(that.opened, atomic.LoadUint32(that.seq))
	that.mu.Unlock()

	shm.WakeAll(that.opened)

	return nil
}

// Selector - picks the next turn holder from the current one and the active set.
// ok=false leaves the turn untouched.
type Selector func(current int, active [entity.MaxPlayers]bool) (next int, ok bool)

// AdvanceWith - runs the selector and applies its choice under one hold of the
// turn mutex. The new turn stays closed until announce has returned, so
// nothing the new holder does can precede the announcement. announce runs
// without the turn mutex held and may be nil.
func (that *State) AdvanceWith(selector Selector, announce func(next int)) (int, bool) {
	that.mu.Lock()

	current := that.turn()
	next, ok := selector(current, that.active())
	if ok && entity.ValidatePlayer(next) != nil {
		ok = false
	}

	if !ok {
		that.mu.Unlock()
		return current, false
	}

	that.setTurn(next)
	epoch := atomic.LoadUint32(that.seq)

	if announce != nil {
		that.mu.Unlock()
		announce(next)
		that.mu.Lock()
	}

	// A newer advance in the gap opens its own epoch.
	if atomic.LoadUint32(that.seq) == epoch {
		atomic.StoreUint32(that.opened, epoch)
	}

	that.mu.Unlock()

	shm.WakeAll(that.opened)

	return next, true
}

// WaitTurnChange - blocks until a turn epoch other than seen is open or the timeout passes.
func (that *State) WaitTurnChange(seen uint32, timeout time.Duration) uint32 {
	return shm.WaitChange(that.opened, seen, timeout)
}

// PlaceForcedMove - writes the player's symbol into the first empty cell.
func (that *State) PlaceForcedMove(player int) (entity.Cell, bool) {
	if entity.ValidatePlayer(player) != nil {
		return entity.Cell{}, false
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.placeForced(player)
}

func (that *State) CheckWinner(symbol byte) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	board := that.board()

	return board.HasWinner(symbol)
}

// ResetBoard - clears every cell and the move counter.
func (that *State) ResetBoard() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.resetBoard()
}

func (that *State) MovesMade() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return int(getUint32(that.data, offMovesMade))
}

// PlayTurn - the whole turn as one transaction: check the turn, place the
// forced move, evaluate the outcome and reset the board after a win or draw.
// A turn grants a single move; a second call in the same epoch is refused.
func (that *State) PlayTurn(player int) (entity.TurnResult, error) {
	if err := entity.ValidatePlayer(player); err != nil {
		return entity.TurnResult{}, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.turn() != player {
		return entity.TurnResult{}, apperror.ErrNotYourTurn
	}

	epoch := atomic.LoadUint32(that.seq)
	if atomic.LoadUint32(that.opened) != epoch {
		return entity.TurnResult{}, apperror.ErrNotYourTurn
	}

	if getUint32(that.data, offLastMove) == epoch {
		return entity.TurnResult{}, apperror.ErrAlreadyMoved
	}

	cell, ok := that.placeForced(player)
	if !ok {
		return entity.TurnResult{}, apperror.ErrBoardFull
	}

	putUint32(that.data, offLastMove, epoch)

	result := entity.TurnResult{
		Player:  player,
		Symbol:  entity.Symbol(player),
		Cell:    cell,
		Outcome: entity.OutcomeContinue,
		Epoch:   epoch,
	}

	board := that.board()
	switch {
	case board.HasWinner(result.Symbol):
		result.Outcome = entity.OutcomeWin
		that.resetBoard()
	case getUint32(that.data, offMovesMade) == entity.BoardCells:
		result.Outcome = entity.OutcomeDraw
		that.resetBoard()
	}

	return result, nil
}

// SetActive - toggles a slot in the active set.
func (that *State) SetActive(player int, active bool) error {
	if err := entity.ValidatePlayer(player); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	var flag byte
	if active {
		flag = 1
	}
	that.data[offActive+player] = flag

	return nil
}

func (that *State) IsActive(player int) bool {
	if entity.ValidatePlayer(player) != nil {
		return false
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.data[offActive+player] != 0
}

// ActivePlayers - the active slots in ascending order.
func (that *State) ActivePlayers() []int {
	that.mu.Lock()
	active := that.active()
	that.mu.Unlock()

	players := make([]int, 0, entity.MaxPlayers)
	for player, ok := range active {
		if ok {
			players = append(players, player)
		}
	}

	return players
}

func (that *State) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return Snapshot{
		Turn:          that.turn(),
		Sequence:      atomic.LoadUint32(that.seq),
		MovesMade:     int(getUint32(that.data, offMovesMade)),
		LastMoveEpoch: getUint32(that.data, offLastMove),
		Active:        that.active(),
		Board:         that.board(),
	}
}

// The helpers below expect the turn mutex to be held.

func (that *State) turn() int {
	return int(getUint32(that.data, offTurn))
}

func (that *State) setTurn(next int) {
	putUint32(that.data, offTurn, uint32(next))
	atomic.AddUint32(that.seq, 1)
}

func (that *State) active() [entity.MaxPlayers]bool {
	var active [entity.MaxPlayers]bool
	for i := range active {
		active[i] = that.data[offActive+i] != 0
	}

	return active
}

func (that *State) board() entity.Board {
	var board entity.Board
	copy(board[:], that.data[offBoard:offBoard+entity.BoardCells])

	return board
}

func (that *State) placeForced(player int) (entity.Cell, bool) {
	board := that.board()

	cell, ok := board.PlaceForced(entity.Symbol(player))
	if !ok {
		return entity.Cell{}, false
	}

	copy(that.data[offBoard:], board[:])
	putUint32(that.data, offMovesMade, getUint32(that.data, offMovesMade)+1)

	return cell, true
}

func (that *State) resetBoard() {
	board := entity.NewBoard()
	copy(that.data[offBoard:], board[:])
	putUint32(that.data, offMovesMade, 0)
}

func getUint32(data []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(data[off:])
}

func putUint32(data []byte, off int, value uint32) {
	binary.LittleEndian.PutUint32(data[off:], value)
}
