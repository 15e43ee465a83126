package eventlog

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// FileSink - appends entries to a text file, one per line.
type FileSink struct {
	file   *os.File
	writer *bufio.Writer
}

func NewFileSink(path string) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("can't open log file: %w", err)
	}

	return &FileSink{file: file, writer: bufio.NewWriter(file)}, nil
}

func (that *FileSink) Write(_ context.Context, entries []string) error {
	for _, entry := range entries {
		if _, err := that.writer.WriteString(entry); err != nil {
			return fmt.Errorf("can't write log entry: %w", err)
		}

		if err := that.writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("can't write log entry: %w", err)
		}
	}

	if err := that.writer.Flush(); err != nil {
		return fmt.Errorf("can't flush log file: %w", err)
	}

	return nil
}

func (that *FileSink) Close() error {
	if err := that.writer.Flush(); err != nil {
		_ = that.file.Close()
		return fmt.Errorf("can't flush log file: %w", err)
	}

	if err := that.file.Close(); err != nil {
		return fmt.Errorf("can't close log file: %w", err)
	}

	return nil
}
