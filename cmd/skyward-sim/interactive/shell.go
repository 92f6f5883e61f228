// Package interactive provides the interactive command-line interface
// for the drone simulator.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
	"github.com/skyward-sdk/skyward-go/pkg/sim"
)

// callTimeout bounds how long a shell command waits for the executor.
const callTimeout = 2 * time.Second

// Shell handles interactive mode for skyward-sim.
type Shell struct {
	sim *sim.Sim
	rl  *readline.Instance
	out io.Writer

	unsubscribe func()
}

// New creates a shell reading commands from the terminal.
func New(s *sim.Sim) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "drone> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	sh := newShell(s, rl.Stdout())
	sh.rl = rl
	return sh, nil
}

func newShell(s *sim.Sim, out io.Writer) *Shell {
	sh := &Shell{sim: s, out: out}
	sh.unsubscribe = s.Drone().Store().SubscribeAll(component.ObserverFunc(sh.printChange))
	return sh
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (sh *Shell) Stdout() io.Writer {
	return sh.out
}

// Run starts the interactive command loop.
func (sh *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer sh.close()

	sh.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := sh.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(sh.out, "Exiting...")
			cancel()
			return
		}

		if !sh.Execute(ctx, line) {
			cancel()
			return
		}
	}
}

func (sh *Shell) close() {
	sh.unsubscribe()
	if sh.rl != nil {
		sh.rl.Close()
	}
}

// Execute runs one command line. It returns false when the shell should
// exit.
func (sh *Shell) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		sh.printHelp()

	case "status", "s":
		sh.cmdStatus(ctx)

	case "activate", "a":
		sh.cmdActivate(ctx, args)

	case "deactivate", "d":
		sh.cmdDeactivate(ctx, args)

	case "takeoff":
		sh.cmdManual(ctx, "takeoff", (*pilotingitf.ManualCopter).TakeOff)

	case "land":
		sh.cmdManual(ctx, "land", (*pilotingitf.ManualCopter).Land)

	case "target":
		sh.cmdTarget(ctx, args)

	case "connect":
		sh.cmdLink("connect", sh.sim.Autopilot().Connect)

	case "disconnect":
		sh.cmdLink("disconnect", sh.sim.Autopilot().Disconnect)

	case "quit", "exit", "q":
		fmt.Fprintln(sh.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(sh.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (sh *Shell) printHelp() {
	fmt.Fprintln(sh.out, `
Skyward Simulator Commands:
  Piloting interfaces:
    status              - Show link and interface states
    activate <itf>      - Activate a piloting interface (e.g. returnHome)
    deactivate <itf>    - Deactivate a piloting interface

  Manual piloting:
    takeoff             - Take off (manualCopter must be active)
    land                - Land

  Return home:
    target <takeoff|controller> - Set the return-home target

  Link:
    connect             - Bring the drone link up
    disconnect          - Take the drone link down

  General:
    help                - Show this help
    quit                - Exit simulator`)
}

// call runs fn on the drone's executor and reports failures to the user.
func (sh *Shell) call(ctx context.Context, fn func()) bool {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := sh.sim.Drone().Executor().Call(ctx, fn); err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return false
	}
	return true
}

func (sh *Shell) cmdStatus(ctx context.Context) {
	var b strings.Builder
	sh.call(ctx, func() {
		d := sh.sim.Drone()
		ctrl := d.Controller()

		fmt.Fprintf(&b, "Drone:     %s\n", d.Name())
		fmt.Fprintf(&b, "Connected: %t\n", d.IsConnected())
		if d.IsConnected() {
			fmt.Fprintf(&b, "Session:   %s\n", d.SessionID())
			fmt.Fprintf(&b, "Flying:    %t\n", sh.sim.Autopilot().Flying())
		}
		fmt.Fprintf(&b, "Current:   %s\n", typeOrNone(ctrl.Current()))
		fmt.Fprintf(&b, "Default:   %s\n", typeOrNone(ctrl.Default()))
		if t, ok := ctrl.Pending(); ok {
			fmt.Fprintf(&b, "Pending:   %s\n", t)
		}
		fmt.Fprintf(&b, "Unconfirmed commands: %d\n", sh.sim.Tracker().PendingCount())

		b.WriteString("\nInterfaces:\n")
		for _, c := range d.Store().Components() {
			fmt.Fprintf(&b, "  %-14s %s\n", c.Descriptor().Name, describe(c))
		}

		stats := d.Store().Stats()
		fmt.Fprintf(&b, "\nCommits: %d (%d notifications, %d dirty marks)\n",
			stats.Commits, stats.Published, stats.DirtyMarks)
	})
	fmt.Fprint(sh.out, b.String())
}

func (sh *Shell) cmdActivate(ctx context.Context, args []string) {
	t, ok := sh.parseInterface("activate", args)
	if !ok {
		return
	}
	var (
		accepted bool
		err      error
	)
	if sh.call(ctx, func() { accepted, err = sh.sim.Activate(t) }) {
		sh.report("activate "+t.String(), accepted, err)
	}
}

func (sh *Shell) cmdDeactivate(ctx context.Context, args []string) {
	t, ok := sh.parseInterface("deactivate", args)
	if !ok {
		return
	}
	var (
		accepted bool
		err      error
	)
	if sh.call(ctx, func() { accepted, err = sh.sim.Deactivate(t) }) {
		sh.report("deactivate "+t.String(), accepted, err)
	}
}

func (sh *Shell) cmdManual(ctx context.Context, name string, fn func(*pilotingitf.ManualCopter) bool) {
	itf, ok := sh.sim.ManualCopter()
	if !ok {
		fmt.Fprintln(sh.out, "Error: drone has no manualCopter interface")
		return
	}
	var accepted bool
	if sh.call(ctx, func() { accepted = fn(itf) }) {
		sh.report(name, accepted, nil)
	}
}

func (sh *Shell) cmdTarget(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "Usage: target <takeoff|controller>")
		return
	}
	var target pilotingitf.ReturnHomeTarget
	switch strings.ToLower(args[0]) {
	case "takeoff":
		target = pilotingitf.TargetTakeOffPosition
	case "controller":
		target = pilotingitf.TargetControllerPosition
	default:
		fmt.Fprintf(sh.out, "Error: unknown target %q (use takeoff or controller)\n", args[0])
		return
	}

	itf, ok := sh.sim.ReturnHome()
	if !ok {
		fmt.Fprintln(sh.out, "Error: drone has no returnHome interface")
		return
	}
	var accepted bool
	if sh.call(ctx, func() { accepted = itf.SetTarget(target) }) {
		sh.report("target "+target.String(), accepted, nil)
	}
}

func (sh *Shell) cmdLink(name string, fn func() bool) {
	if !fn() {
		fmt.Fprintf(sh.out, "Error: %s could not be queued\n", name)
		return
	}
	fmt.Fprintf(sh.out, "%s queued\n", name)
}

func (sh *Shell) parseInterface(cmd string, args []string) (component.Type, bool) {
	if len(args) != 1 {
		fmt.Fprintf(sh.out, "Usage: %s <interface>\n", cmd)
		return 0, false
	}
	t, err := pilotingitf.ParseType(args[0])
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return 0, false
	}
	return t, true
}

func (sh *Shell) report(what string, accepted bool, err error) {
	switch {
	case err != nil:
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	case accepted:
		fmt.Fprintf(sh.out, "%s: sent\n", what)
	default:
		fmt.Fprintf(sh.out, "%s: rejected\n", what)
	}
}

// printChange runs on the executor for every committed component.
func (sh *Shell) printChange(c component.Component) {
	fmt.Fprintf(sh.out, "[changed] %s %s\n", c.Descriptor().Name, describe(c))
}

// describe formats the observable state of a piloting interface.
func describe(c component.Component) string {
	switch itf := c.(type) {
	case *pilotingitf.ManualCopter:
		return fmt.Sprintf("%s canTakeOff=%t canLand=%t", itf.State(), itf.CanTakeOff(), itf.CanLand())
	case *pilotingitf.ReturnHome:
		return fmt.Sprintf("%s reason=%s target=%s", itf.State(), itf.Reason(), itf.Target())
	case pilotingitf.Activable:
		return itf.State().String()
	default:
		return ""
	}
}

func typeOrNone(t component.Type, ok bool) string {
	if !ok {
		return "none"
	}
	return t.String()
}
