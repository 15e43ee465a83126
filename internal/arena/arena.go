//go:build unix

// Package arena lays out every shared section of a run in one mapping.
package arena

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/eventlog"
	"github.com/rocketscienceinc/tictactoe-arena/internal/gamestate"
	"github.com/rocketscienceinc/tictactoe-arena/internal/scores"
	"github.com/rocketscienceinc/tictactoe-arena/internal/shm"
)

const sectionAlign = 64

var (
	offState  = 0
	offEvents = align(offState + gamestate.Size)
	offScores = align(offEvents + eventlog.Size)

	// Size - bytes of the whole mapping.
	Size = align(offScores + scores.Size)
)

// Arena - handles to every section of the shared region.
type Arena struct {
	region *shm.Region

	State  *gamestate.State
	Events *eventlog.Queue
	Scores *scores.Table
}

// Create - makes a fresh named region and formats every section. Only the
// coordinator calls it, before any worker starts.
func Create(name string, active []int) (*Arena, error) {
	region, err := shm.Create(name, Size)
	if err != nil {
		return nil, err
	}

	arena, err := format(region, active)
	if err != nil {
		_ = region.Close()
		_ = region.Unlink()
		return nil, err
	}

	return arena, nil
}

// Open - maps a region the coordinator already formatted.
func Open(name string) (*Arena, error) {
	region, err := shm.Open(name, Size)
	if err != nil {
		return nil, err
	}

	arena, err := bind(region)
	if err != nil {
		_ = region.Close()
		return nil, err
	}

	return arena, nil
}

// Anonymous - a private formatted region for runs that keep every player in one process.
func Anonymous(active []int) (*Arena, error) {
	region, err := shm.Anonymous(Size)
	if err != nil {
		return nil, err
	}

	arena, err := format(region, active)
	if err != nil {
		_ = region.Close()
		return nil, err
	}

	return arena, nil
}

func (that *Arena) Name() string {
	return that.region.Name()
}

// Close - unmaps the region. Handles must not be used afterwards.
func (that *Arena) Close() error {
	return that.region.Close()
}

// Unlink - removes the region name. Processes that mapped it keep their view.
func (that *Arena) Unlink() error {
	return that.region.Unlink()
}

// format - the events and scores sections are reset before the state gets
// its magic, so an attaching worker never sees a half-formatted region.
func format(region *shm.Region, active []int) (*Arena, error) {
	data := region.Bytes()

	events, err := eventlog.New(data[offEvents:])
	if err != nil {
		return nil, fmt.Errorf("can't format event log: %w", err)
	}
	events.Reset()

	table, err := scores.NewTable(data[offScores:])
	if err != nil {
		return nil, fmt.Errorf("can't format score table: %w", err)
	}
	table.Reset()

	state, err := gamestate.Init(data[offState:], active)
	if err != nil {
		return nil, fmt.Errorf("can't format game state: %w", err)
	}

	return &Arena{region: region, State: state, Events: events, Scores: table}, nil
}

func bind(region *shm.Region) (*Arena, error) {
	data := region.Bytes()

	state, err := gamestate.Attach(data[offState:])
	if err != nil {
		return nil, fmt.Errorf("can't attach game state: %w", err)
	}

	events, errEvents := eventlog.New(data[offEvents:])
	table, errScores := scores.NewTable(data[offScores:])
	if err = errors.Join(errEvents, errScores); err != nil {
		return nil, fmt.Errorf("can't attach region: %w", err)
	}

	return &Arena{region: region, State: state, Events: events, Scores: table}, nil
}

func align(off int) int {
	return (off + sectionAlign - 1) &^ (sectionAlign - 1)
}
