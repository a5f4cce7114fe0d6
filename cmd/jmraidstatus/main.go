// Command jmraidstatus reports SMART health for the disks behind a
// JMicron RAID bridge by talking to its in-band mailbox protocol
// directly over a SCSI pass-through block device.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jamietre/jm-raid-status/pkg/jmconfig"
)

const (
	programName = "jmraidstatus"
	programDesc = "Report SMART health for disks behind a JMicron RAID bridge"
)

// cliFlags is the kong command-line schema. It also doubles as the
// parameter type run() takes, so the execution logic never touches
// the package-level kong binding directly.
type cliFlags struct {
	Device string `arg:"" optional:"" help:"Path to the block device exposing the bridge"`

	Sector          uint32 `help:"Mailbox sector override" default:"33"`
	ExpectedDisks   int    `help:"Expected number of populated slots (1-5); enables degraded/oversized checks"`
	Config          string `help:"Path to a threshold configuration file"`
	Output          string `help:"Output mode" default:"summary" enum:"summary,full,json,ndjson,openmetrics"`
	ControllerModel string `help:"Bridge controller model to report in structured output" default:"JMicron"`
	Quiet           bool   `short:"q" help:"Suppress all stderr narration"`
	Verbose         bool   `short:"v" help:"Narrate each slot probe and the bitmask observation"`

	WriteConfig string `name:"write-config" help:"Write a starter threshold configuration file to this path and exit"`
}

var cli cliFlags

func main() {
	ctx := kong.Parse(&cli,
		kong.Name(programName),
		kong.Description(programDesc),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if cli.WriteConfig != "" {
		if err := jmconfig.WriteDefault(cli.WriteConfig); err != nil {
			ctx.FatalIfErrorf(err)
		}
		fmt.Printf("default configuration written to %s\n", cli.WriteConfig)
		return
	}

	if cli.Device == "" {
		ctx.Fatalf("device is required unless --write-config is given")
	}

	os.Exit(run(&cli))
}
