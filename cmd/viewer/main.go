// Command viewer prints the messages a player's worker sends to its channel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/notify"
)

func main() {
	prefix := flag.String("prefix", notify.DefaultPrefix, "channel path prefix")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-prefix path] <player_id>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	player, err := strconv.Atoi(flag.Arg(0))
	if err == nil {
		err = entity.ValidatePlayer(player)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid player id %q: %v\n", flag.Arg(0), err)
		os.Exit(2)
	}

	if err = view(notify.Path(*prefix, player), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// view - holds the pipe open read-write so it survives worker restarts, and
// prints one line per message.
func view(path string, out io.Writer) error {
	pipe, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("can't open channel: %w", err)
	}
	defer pipe.Close()

	reader := notify.NewReader(pipe)
	for {
		message, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if _, err = fmt.Fprintln(out, message); err != nil {
			return fmt.Errorf("can't print message: %w", err)
		}
	}
}
