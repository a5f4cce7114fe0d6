// Package jmreport renders an array snapshot in the output modes an
// operator or an aggregating collaborator needs: a human summary
// table, a per-attribute detail listing, structured JSON, one-line
// NDJSON for log shipping, and OpenMetrics for scraping.
package jmreport

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jamietre/jm-raid-status/pkg/jmarray"
)

// WriteSummary prints one line per disk slot: presence, model,
// serial, size, and overall status.
func WriteSummary(w io.Writer, device string, snap *jmarray.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "device:\t%s\n", device)
	fmt.Fprintf(tw, "present disks:\t%d\n", snap.PresentDisks)
	if snap.ExpectedDisks > 0 {
		fmt.Fprintf(tw, "expected disks:\t%d\n", snap.ExpectedDisks)
	}
	fmt.Fprintf(tw, "array verdict:\t%s\n", snap.Verdict)
	if snap.Degraded {
		fmt.Fprintln(tw, "warning:\tarray is DEGRADED")
	}
	if snap.Oversized {
		fmt.Fprintln(tw, "warning:\tarray is OVERSIZED")
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "slot\tpresent\tmodel\tserial\tfirmware\tsize_mb\tstatus")
	for _, d := range snap.Disks {
		if !d.Present {
			fmt.Fprintf(tw, "%d\tno\t-\t-\t-\t-\t%s\n", d.Slot, statusOrEmpty(d))
			continue
		}
		fmt.Fprintf(tw, "%d\tyes\t%s\t%s\t%s\t%d\t%s\n",
			d.Slot, d.Model, d.Serial, d.Firmware, d.SizeMB, d.OverallStatus)
	}
	return tw.Flush()
}

func statusOrEmpty(d jmarray.DiskRecord) string {
	if d.OverallStatus == "" {
		return "absent"
	}
	return d.OverallStatus
}

// WriteFull prints the summary followed by every SMART attribute for
// every present disk.
func WriteFull(w io.Writer, device string, snap *jmarray.Snapshot) error {
	if err := WriteSummary(w, device, snap); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, d := range snap.Disks {
		if !d.Present {
			continue
		}
		fmt.Fprintf(tw, "\nslot %d (%s):\n", d.Slot, d.Model)
		fmt.Fprintln(tw, "id\tname\tcurrent\tworst\tthreshold\traw\tstatus")
		for _, a := range d.Attributes {
			fmt.Fprintf(tw, "%#02x\t%s\t%d\t%d\t%d\t%d\t%s\n",
				a.ID, a.Name, a.Current, a.Worst, a.Threshold, a.Raw, a.Status)
		}
	}
	return tw.Flush()
}
