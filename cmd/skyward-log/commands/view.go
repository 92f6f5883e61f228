package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/skyward-sdk/skyward-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [conn:%s] %-5s %s %s\n",
		ts, shortenConnID(event.ConnectionID), event.Direction, event.Layer, typeLabel(event))

	switch {
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Commit != nil:
		fmt.Fprintf(w, "  Components: %s\n", strings.Join(event.Commit.Components, ", "))
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}
	if event.DeviceID != "" {
		fmt.Fprintf(w, "  Device: %s\n", event.DeviceID)
	}

	fmt.Fprintln(w)
}

// typeLabel names the event payload.
func typeLabel(event log.Event) string {
	switch {
	case event.Command != nil:
		return "Command"
	case event.StateChange != nil:
		return "State"
	case event.Commit != nil:
		return "Commit"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	status := "accepted"
	if !cmd.Accepted {
		status = "rejected"
	}
	fmt.Fprintf(w, "  %s.%s (%s)\n", cmd.Component, cmd.Command, status)
	if cmd.Argument != "" {
		fmt.Fprintf(w, "  Argument: %s\n", cmd.Argument)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s", sc.Entity)
	if sc.Component != "" {
		fmt.Fprintf(w, " %s", sc.Component)
	}
	fmt.Fprintln(w)
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer)
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// RunView prints the events matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
