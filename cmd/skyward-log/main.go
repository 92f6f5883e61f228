// Command skyward-log views and analyzes drone event logs.
//
// Event logs are written by skyward-sim with the -protocol-log flag.
//
// Usage:
//
//	skyward-log <command> [flags] <file.plog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON lines or CSV
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View only commands
//	skyward-log view -category command flight.plog
//
//	# Everything that touched return-to-home, including commits
//	skyward-log view -component returnHome flight.plog
//
//	# Keep one session
//	skyward-log filter -conn-id 3f2a9c1e -o session.plog flight.plog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/skyward-sdk/skyward-go/cmd/skyward-log/commands"
)

const usage = `skyward-log - Skyward drone event log analyzer

Usage:
  skyward-log <command> [flags] <file.plog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON lines or CSV
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "skyward-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates a flag set with the common usage text.
func newFlagSet(name, summary string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "skyward-log %s - %s\n\nUsage:\n  skyward-log %s [flags] <file.plog>\n\nFlags:\n",
			name, summary, name)
		fs.PrintDefaults()
	}
	return fs
}

// addFilterFlags registers the event filter flags.
func addFilterFlags(fs *flag.FlagSet) *commands.FilterFlags {
	f := &commands.FilterFlags{}
	fs.StringVar(&f.ConnID, "conn-id", "", "Filter by connection ID")
	fs.StringVar(&f.DeviceID, "device-id", "", "Filter by device ID")
	fs.StringVar(&f.Component, "component", "", "Filter by component name (e.g. manualCopter)")
	fs.StringVar(&f.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&f.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&f.Layer, "layer", "", "Filter by layer (application, component, backend)")
	fs.StringVar(&f.Direction, "direction", "", "Filter by direction (in, out, local)")
	fs.StringVar(&f.Category, "category", "", "Filter by category (command, state, commit, error)")
	return f
}

// parseArgs parses the flags and returns the log file path.
func parseArgs(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := newFlagSet("view", "View log file in human-readable format")
	flags := addFilterFlags(fs)
	path := parseArgs(fs, args)

	filter, err := flags.Build()
	if err != nil {
		fail(err)
	}
	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export log file to JSON lines or CSV")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := parseArgs(fs, args)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := newFlagSet("filter", "Filter log file and write to new file")
	output := fs.String("o", "", "Output file (required)")
	flags := addFilterFlags(fs)
	path := parseArgs(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := flags.Build()
	if err != nil {
		fail(err)
	}
	if err := commands.RunFilter(path, *output, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := newFlagSet("stats", "Show statistics about the log file")
	path := parseArgs(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
