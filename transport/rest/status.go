package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/gamestate"
)

type stateDep interface {
	Snapshot() gamestate.Snapshot
}

type scoresDep interface {
	Records() [entity.MaxPlayers]entity.ScoreRecord
}

type stateResponse struct {
	Turn      int                      `json:"turn"`
	Sequence  uint32                   `json:"sequence"`
	MovesMade int                      `json:"moves_made"`
	Active    [entity.MaxPlayers]bool  `json:"active"`
	Board     [entity.BoardSize]string `json:"board"`
}

type StatusHandler struct {
	logger *slog.Logger
	state  stateDep
	scores scoresDep
}

func NewStatusHandler(logger *slog.Logger, state stateDep, scores scoresDep) *StatusHandler {
	return &StatusHandler{
		logger: logger.With("component", "rest"),
		state:  state,
		scores: scores,
	}
}

// Ping - liveness probe.
func (that *StatusHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Warn("failed to write response", "method", "Ping", "error", err)
	}
}

// State - the current turn, counters and board, one string per row.
func (that *StatusHandler) State(w http.ResponseWriter, _ *http.Request) {
	snapshot := that.state.Snapshot()

	response := stateResponse{
		Turn:      snapshot.Turn,
		Sequence:  snapshot.Sequence,
		MovesMade: snapshot.MovesMade,
		Active:    snapshot.Active,
	}
	for row := range entity.BoardSize {
		response.Board[row] = string(snapshot.Board[row*entity.BoardSize : (row+1)*entity.BoardSize])
	}

	that.writeJSON(w, "State", response)
}

// Scores - every named slot with its score.
func (that *StatusHandler) Scores(w http.ResponseWriter, _ *http.Request) {
	records := make([]entity.ScoreRecord, 0, entity.MaxPlayers)
	for _, record := range that.scores.Records() {
		if record.Name != "" {
			records = append(records, record)
		}
	}

	that.writeJSON(w, "Scores", records)
}

func (that *StatusHandler) writeJSON(w http.ResponseWriter, method string, response any) {
	body, err := json.Marshal(response)
	if err != nil {
		that.logger.Error("failed to marshal response", "method", method, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(body); err != nil {
		that.logger.Warn("failed to write response", "method", method, "error", err)
	}
}
