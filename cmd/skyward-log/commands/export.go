package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/skyward-sdk/skyward-go/pkg/log"
)

// RunExport exports the log file as JSON lines or CSV. An empty output
// writes to stdout.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	return forEach(reader, func(event log.Event) error {
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
}

var csvHeader = []string{
	"timestamp", "connection_id", "device_id", "direction", "layer", "category",
	"type", "component", "detail",
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	return forEach(reader, func(event log.Event) error {
		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.ConnectionID,
			event.DeviceID,
			event.Direction.String(),
			event.Layer.String(),
			event.Category.String(),
			typeLabel(event),
			event.ComponentName(),
			detail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
}

// detail summarizes the event payload in one column.
func detail(event log.Event) string {
	switch {
	case event.Command != nil:
		return event.Command.Command + " accepted=" + strconv.FormatBool(event.Command.Accepted)
	case event.StateChange != nil:
		return event.StateChange.OldState + "->" + event.StateChange.NewState
	case event.Commit != nil:
		return strconv.Itoa(len(event.Commit.Components)) + " components"
	case event.Error != nil:
		return event.Error.Message
	default:
		return ""
	}
}

func forEach(reader *log.Reader, fn func(log.Event) error) error {
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}
