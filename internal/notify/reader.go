package notify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Reader - splits a channel stream back into messages.
type Reader struct {
	reader *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReaderSize(r, MessageSize)}
}

// Next - blocks until a whole message is available.
func (that *Reader) Next() (string, error) {
	message, err := that.reader.ReadString(0)
	if err != nil {
		if errors.Is(err, io.EOF) && message == "" {
			return "", io.EOF
		}
		return "", fmt.Errorf("can't read message: %w", err)
	}

	return message[:len(message)-1], nil
}
