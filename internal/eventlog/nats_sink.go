package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const flushTimeout = 5 * time.Second

// NATSSink - publishes each entry to a subject so remote viewers can follow the game.
type NATSSink struct {
	conn    *nats.Conn
	subject string
}

func NewNATSSink(url, subject string) (*NATSSink, error) {
	opts := []nats.Option{
		nats.Name("tictactoe-arena"),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSSink{conn: conn, subject: subject}, nil
}

func (that *NATSSink) Write(_ context.Context, entries []string) error {
	for _, entry := range entries {
		if err := that.conn.Publish(that.subject, []byte(entry)); err != nil {
			return fmt.Errorf("failed to publish event: %w", err)
		}
	}

	if err := that.conn.FlushTimeout(flushTimeout); err != nil {
		return fmt.Errorf("failed to flush events: %w", err)
	}

	return nil
}

func (that *NATSSink) Close() error {
	if err := that.conn.Drain(); err != nil {
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}

	return nil
}
