package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/jamietre/jm-raid-status/pkg/jmarray"
	"github.com/jamietre/jm-raid-status/pkg/jmreport"
)

func TestRenderDispatchesByOutputMode(t *testing.T) {
	snap := &jmarray.Snapshot{Verdict: jmarray.StatusPassed}
	controller := jmreport.ControllerInfo{Model: "JMB393"}

	for _, mode := range []string{"summary", "full", "json", "ndjson", "openmetrics"} {
		c := &cliFlags{Device: "/dev/sdx", Output: mode}

		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("os.Pipe: %v", err)
		}
		orig := os.Stdout
		os.Stdout = w

		renderErr := render(c, snap, controller)

		os.Stdout = orig
		w.Close()
		var buf bytes.Buffer
		buf.ReadFrom(r)

		if renderErr != nil {
			t.Fatalf("render(%s): %v", mode, renderErr)
		}
		if buf.Len() == 0 {
			t.Fatalf("render(%s) produced no output", mode)
		}
	}
}
