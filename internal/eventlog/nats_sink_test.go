package eventlog

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
)

func TestNATSSink(t *testing.T) {
	ctx, url := suite.NewNATS(t)

	t.Run("Publishes every entry in order", func(t *testing.T) {
		// Given: A subscriber on the events subject
		const subject = "tictactoe.events.test"

		conn, err := nats.Connect(url)
		require.NoError(t, err)
		t.Cleanup(conn.Close)

		messages := make(chan *nats.Msg, 8)
		sub, err := conn.ChanSubscribe(subject, messages)
		require.NoError(t, err)
		t.Cleanup(func() { _ = sub.Unsubscribe() })
		require.NoError(t, conn.Flush())

		sink, err := NewNATSSink(url, subject)
		require.NoError(t, err)

		// When
		err = sink.Write(ctx, []string{"Player 2 placed Z at (2,2)", "Player 2 WINS!"})

		// Then
		require.NoError(t, err)
		require.NoError(t, sink.Close())

		var got []string
		for range 2 {
			select {
			case msg := <-messages:
				got = append(got, string(msg.Data))
			case <-time.After(5 * time.Second):
				t.Fatal("timed out waiting for event")
			}
		}
		assert.Equal(t, []string{"Player 2 placed Z at (2,2)", "Player 2 WINS!"}, got)
	})

	t.Run("Fails fast on an unreachable server", func(t *testing.T) {
		// When
		_, err := NewNATSSink("nats://127.0.0.1:1", "tictactoe.events")

		// Then
		require.Error(t, err)
	})
}
