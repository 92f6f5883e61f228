package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/skyward-sdk/skyward-go/pkg/log"
)

// RunFilter copies the events matching filter into a new log file and
// reports how many were written.
func RunFilter(path, output string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewTruncatingFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	written, dropped := logger.Counts()
	fmt.Fprintf(w, "Filtered %d events to %s\n", written, output)
	if dropped > 0 {
		return fmt.Errorf("%d events could not be written", dropped)
	}
	return nil
}
