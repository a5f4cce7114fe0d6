package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jamietre/jm-raid-status/pkg/jmarray"
	"github.com/jamietre/jm-raid-status/pkg/jmconfig"
	"github.com/jamietre/jm-raid-status/pkg/jmreport"
	"github.com/jamietre/jm-raid-status/pkg/mailbox"
	"github.com/jamietre/jm-raid-status/pkg/smart"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	exitHealthy   = 0
	exitUnhealthy = 1
	exitError     = 3
)

func run(c *cliFlags) int {
	log := newLogger(c)

	cfg := smart.DefaultConfig()
	if c.Config != "" {
		loaded, err := jmconfig.Load(c.Config)
		if err != nil {
			log.Error().Err(err).Msg("failed to load threshold configuration")
			return exitError
		}
		cfg = loaded
	}

	sess, err := mailbox.Open(c.Device, c.Sector, log)
	if err != nil {
		log.Error().Err(err).Str("device", c.Device).Msg("failed to open mailbox")
		return exitError
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close mailbox cleanly")
		}
	}()

	if err := sess.SendWakeup(); err != nil {
		log.Error().Err(err).Msg("wakeup sequence failed")
		return exitError
	}

	snap := jmarray.Sweep(sess, c.ExpectedDisks, cfg, log)

	controller := jmreport.ControllerInfo{Model: c.ControllerModel, Type: "jmicron-bridge"}
	if err := render(c, snap, controller); err != nil {
		log.Error().Err(err).Msg("failed to render report")
		return exitError
	}

	if !c.Quiet && snap.Degraded {
		printDegradedBanner(c.Device)
	}

	if snap.Verdict != jmarray.StatusPassed {
		return exitUnhealthy
	}
	return exitHealthy
}

func render(c *cliFlags, snap *jmarray.Snapshot, controller jmreport.ControllerInfo) error {
	switch c.Output {
	case "full":
		return jmreport.WriteFull(os.Stdout, c.Device, snap)
	case "json":
		return jmreport.WriteJSON(os.Stdout, "jmraidstatus", c.Device, controller, snap)
	case "ndjson":
		return jmreport.WriteNDJSON(os.Stdout, "jmraidstatus", c.Device, controller, snap)
	case "openmetrics":
		return jmreport.WriteMetrics(os.Stdout, c.Device, snap)
	default:
		return jmreport.WriteSummary(os.Stdout, c.Device, snap)
	}
}

func newLogger(c *cliFlags) zerolog.Logger {
	if c.Quiet {
		return zerolog.Nop()
	}
	level := zerolog.InfoLevel
	if c.Verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// printDegradedBanner emphasizes the degraded-array warning with bold
// text when stderr is an interactive terminal, and plainly otherwise.
func printDegradedBanner(device string) {
	msg := fmt.Sprintf("WARNING: array on %s is DEGRADED\n", device)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "\033[1;31m%s\033[0m", msg)
		return
	}
	fmt.Fprint(os.Stderr, msg)
}
