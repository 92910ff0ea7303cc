package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// newDebugLogger opens a structured log writing to the given file. The log
// never writes to stdout, which belongs to the display. An empty path
// returns a nil logger and a no-op closer.
func newDebugLogger(path string) (*zerolog.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}

	logger := zerolog.New(f).With().Timestamp().Logger()
	return &logger, func() { f.Close() }, nil
}
