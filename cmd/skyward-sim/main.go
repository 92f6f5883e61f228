// Command skyward-sim runs a simulated drone exposing activable piloting
// interfaces.
//
// The simulator builds the interfaces named in a profile, brings the link
// up and confirms commands after a configurable latency. In interactive
// mode a shell drives the interfaces the way an application would.
//
// Usage:
//
//	skyward-sim [flags]
//
// Flags:
//
//	-profile string       Drone profile (YAML). Built-in profile if empty
//	-name string          Override the profile's drone name
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  File path for drone event logging (CBOR format)
//	-interactive          Run the interactive shell (default true)
//
// Examples:
//
//	# Interactive session with the built-in copter profile
//	skyward-sim
//
//	# Record a flight for skyward-log
//	skyward-sim -profile anafi.yaml -protocol-log flight.plog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/skyward-sdk/skyward-go/cmd/skyward-sim/interactive"
	"github.com/skyward-sdk/skyward-go/pkg/device"
	pdlog "github.com/skyward-sdk/skyward-go/pkg/log"
	"github.com/skyward-sdk/skyward-go/pkg/profile"
	"github.com/skyward-sdk/skyward-go/pkg/sim"
)

// Config holds the command-line configuration.
type Config struct {
	ProfileFile string
	Name        string
	LogLevel    string
	ProtocolLog string
	Interactive bool
}

var config Config

func init() {
	flag.StringVar(&config.ProfileFile, "profile", "", "Drone profile (YAML); built-in profile if empty")
	flag.StringVar(&config.Name, "name", "", "Override the profile's drone name")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.ProtocolLog, "protocol-log", "", "File path for drone event logging (CBOR format)")
	flag.BoolVar(&config.Interactive, "interactive", true, "Run the interactive shell")
}

func main() {
	flag.Parse()

	level, err := parseLevel(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logOutput := &switchWriter{w: os.Stderr}
	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	p, err := loadProfile()
	if err != nil {
		logger.Error("invalid profile", "error", err)
		os.Exit(1)
	}

	// Drone events go to the console at debug level and, optionally, to a
	// flight record for skyward-log.
	var fileLogger *pdlog.FileLogger
	if config.ProtocolLog != "" {
		fileLogger, err = pdlog.NewFileLogger(config.ProtocolLog)
		if err != nil {
			logger.Error("failed to create protocol logger", "error", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		logger.Info("protocol logging enabled", "path", config.ProtocolLog)
	}
	events := []pdlog.Logger{pdlog.NewSlogAdapter(logger)}
	// Only add the file logger when non-nil to avoid the typed-nil interface.
	if fileLogger != nil {
		events = append(events, fileLogger)
	}

	droneCfg := device.DefaultConfig()
	droneCfg.Name = p.Name
	droneCfg.Logger = logger
	droneCfg.EventLogger = pdlog.NewMultiLogger(events...)
	drone := device.NewDrone(droneCfg)

	s, err := sim.Build(drone, p)
	if err != nil {
		logger.Error("failed to build simulator", "error", err)
		os.Exit(1)
	}
	logger.Info("simulator ready",
		"drone", p.Name,
		"interfaces", strings.Join(p.Interfaces, ","),
		"default", p.Default,
		"ackLatency", p.AckLatency)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- s.Run(ctx) }()

	if config.Interactive {
		sh, err := interactive.New(s)
		if err != nil {
			logger.Error("failed to create interactive shell", "error", err)
			os.Exit(1)
		}
		// Route log output through readline to avoid interfering with input.
		logOutput.set(sh.Stdout())
		go sh.Run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	cancel()
	if err := <-runErr; err != nil {
		logger.Error("simulator stopped", "error", err)
	}

	if fileLogger != nil {
		written, dropped := fileLogger.Counts()
		logger.Info("protocol log closed", "path", fileLogger.Path(), "written", written, "dropped", dropped)
	}
}

func loadProfile() (*profile.Profile, error) {
	var p *profile.Profile
	if config.ProfileFile == "" {
		def := profile.Default()
		p = &def
	} else {
		loaded, err := profile.Load(config.ProfileFile)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if config.Name != "" {
		p.Name = config.Name
	}
	return p, p.Validate()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

// switchWriter lets the log destination change once the shell owns the
// terminal.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
