package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/skyward-sdk/skyward-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByLayer    map[log.Layer]int
	EventsByCategory map[log.Category]int
	Components       map[string]*ComponentStats
	Connections      map[string]*ConnectionStats
	Commits          int
	Published        int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// ComponentStats holds statistics for one component.
type ComponentStats struct {
	Commands      int
	Rejected      int
	StateChanges  int
	Notifications int
	LastState     string
}

// ConnectionStats holds statistics for one connection session.
type ConnectionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	DeviceID  string
}

func newStats() *Stats {
	return &Stats{
		EventsByLayer:    make(map[log.Layer]int),
		EventsByCategory: make(map[log.Category]int),
		Components:       make(map[string]*ComponentStats),
		Connections:      make(map[string]*ConnectionStats),
	}
}

func (s *Stats) component(name string) *ComponentStats {
	cs, ok := s.Components[name]
	if !ok {
		cs = &ComponentStats{}
		s.Components[name] = cs
	}
	return cs
}

// add accounts for one event.
func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	conn, ok := s.Connections[event.ConnectionID]
	if !ok {
		conn = &ConnectionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Connections[event.ConnectionID] = conn
	}
	conn.Events++
	if event.Timestamp.After(conn.LastSeen) {
		conn.LastSeen = event.Timestamp
	}
	if conn.DeviceID == "" {
		conn.DeviceID = event.DeviceID
	}

	switch {
	case event.Command != nil:
		cs := s.component(event.Command.Component)
		cs.Commands++
		if !event.Command.Accepted {
			cs.Rejected++
		}
	case event.StateChange != nil && event.StateChange.Entity == log.StateEntityComponent:
		cs := s.component(event.StateChange.Component)
		cs.StateChanges++
		cs.LastState = event.StateChange.NewState
	case event.Commit != nil:
		s.Commits++
		s.Published += len(event.Commit.Components)
		for _, name := range event.Commit.Components {
			s.component(name).Notifications++
		}
	case event.Error != nil:
		s.Errors++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Skyward Drone Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerApplication, log.LayerComponent, log.LayerBackend} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryCommand, log.CategoryState, log.CategoryCommit, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if stats.Commits > 0 {
		fmt.Fprintf(w, "Commits: %d (%d notifications, %.1f per commit)\n",
			stats.Commits, stats.Published, float64(stats.Published)/float64(stats.Commits))
		fmt.Fprintln(w)
	}

	if len(stats.Components) > 0 {
		names := make([]string, 0, len(stats.Components))
		for name := range stats.Components {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "Components:")
		for _, name := range names {
			cs := stats.Components[name]
			fmt.Fprintf(w, "  %-16s commands=%d rejected=%d states=%d notified=%d",
				name, cs.Commands, cs.Rejected, cs.StateChanges, cs.Notifications)
			if cs.LastState != "" {
				fmt.Fprintf(w, " last=%s", cs.LastState)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Connections: %d\n", len(stats.Connections))
	if len(stats.Connections) > 0 {
		type connInfo struct {
			id    string
			stats *ConnectionStats
		}
		conns := make([]connInfo, 0, len(stats.Connections))
		for id, cs := range stats.Connections {
			conns = append(conns, connInfo{id, cs})
		}
		sort.Slice(conns, func(i, j int) bool {
			return conns[i].stats.FirstSeen.Before(conns[j].stats.FirstSeen)
		})

		for _, c := range conns {
			duration := c.stats.LastSeen.Sub(c.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenConnID(c.id), c.stats.Events, duration)
			if c.stats.DeviceID != "" {
				fmt.Fprintf(w, "           Device: %s\n", c.stats.DeviceID)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
