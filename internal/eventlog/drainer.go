package eventlog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultDrainInterval - how often the consumer wakes when none is configured.
const DefaultDrainInterval = 100 * time.Millisecond

// Sink - persistent destination for drained entries.
type Sink interface {
	Write(ctx context.Context, entries []string) error
	Close() error
}

type source interface {
	Pop() []string
	Dropped() int
}

// Drainer - the single consumer of a Queue. It wakes on an interval and hands
// every pending entry to each sink in order.
type Drainer struct {
	logger   *slog.Logger
	queue    source
	sinks    []Sink
	interval time.Duration

	dropped int
}

func NewDrainer(logger *slog.Logger, queue source, interval time.Duration, sinks ...Sink) *Drainer {
	if interval <= 0 {
		interval = DefaultDrainInterval
	}

	return &Drainer{
		logger:   logger.With("component", "eventlog"),
		queue:    queue,
		sinks:    sinks,
		interval: interval,
	}
}

// Run - drains until ctx is done, then drains once more so nothing produced
// before cancellation is left behind.
func (that *Drainer) Run(ctx context.Context) error {
	ticker := time.NewTicker(that.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := that.Flush(context.WithoutCancel(ctx)); err != nil {
				return fmt.Errorf("final flush failed: %w", err)
			}
			return nil
		case <-ticker.C:
			if err := that.Flush(ctx); err != nil {
				that.logger.Error("failed to drain event log", "error", err)
			}
		}
	}
}

// Flush - drains the queue once. Entries are consumed even if a sink fails.
func (that *Drainer) Flush(ctx context.Context) error {
	if dropped := that.queue.Dropped(); dropped != that.dropped {
		that.logger.Warn("event log overflow, oldest entries dropped", "dropped", dropped-that.dropped, "total", dropped)
		that.dropped = dropped
	}

	entries := that.queue.Pop()
	if len(entries) == 0 {
		return nil
	}

	var errs []error
	for _, sink := range that.sinks {
		if err := sink.Write(ctx, entries); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close - closes every sink.
func (that *Drainer) Close() error {
	var errs []error
	for _, sink := range that.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
