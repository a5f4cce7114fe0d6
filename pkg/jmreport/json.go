package jmreport

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/jamietre/jm-raid-status/pkg/jmarray"
)

// ControllerInfo identifies the bridge chip behind the device path,
// supplied by the caller since nothing in the wire protocol reports
// it reliably.
type ControllerInfo struct {
	Model string `json:"model"`
	Type  string `json:"type"`
}

type jsonAttribute struct {
	ID        uint8  `json:"id"`
	Name      string `json:"name"`
	Current   uint8  `json:"current"`
	Worst     uint8  `json:"worst"`
	Threshold uint8  `json:"threshold"`
	Raw       uint64 `json:"raw"`
	Status    string `json:"status"`
}

type jsonDisk struct {
	DiskNumber    int             `json:"disk_number"`
	Present       bool            `json:"present"`
	Model         string          `json:"model,omitempty"`
	Serial        string          `json:"serial,omitempty"`
	Firmware      string          `json:"firmware,omitempty"`
	SizeMB        uint64          `json:"size_mb,omitempty"`
	OverallStatus string          `json:"overall_status"`
	Warning       string          `json:"warning,omitempty"`
	Attributes    []jsonAttribute `json:"attributes,omitempty"`
}

type raidStatus struct {
	PresentDisks  int    `json:"present_disks"`
	ExpectedDisks int    `json:"expected_disks,omitempty"`
	Degraded      bool   `json:"degraded"`
	Oversized     bool   `json:"oversized"`
	Verdict       string `json:"verdict"`
}

// document is the shared structured shape rendered by both WriteJSON
// (pretty, single document) and WriteNDJSON (one compact line).
type document struct {
	Backend    string          `json:"backend"`
	Device     string          `json:"device"`
	Controller ControllerInfo  `json:"controller"`
	Disks      []jsonDisk      `json:"disks"`
	RaidStatus raidStatus      `json:"raid_status"`
	ReportID   string          `json:"report_id,omitempty"`
}

func buildDocument(backend, device string, controller ControllerInfo, snap *jmarray.Snapshot) document {
	disks := make([]jsonDisk, 0, len(snap.Disks))
	for _, d := range snap.Disks {
		jd := jsonDisk{
			DiskNumber:    d.Slot,
			Present:       d.Present,
			Model:         d.Model,
			Serial:        d.Serial,
			Firmware:      d.Firmware,
			SizeMB:        d.SizeMB,
			OverallStatus: statusOrEmpty(d),
			Warning:       d.Warning,
		}
		for _, a := range d.Attributes {
			jd.Attributes = append(jd.Attributes, jsonAttribute{
				ID:        a.ID,
				Name:      a.Name,
				Current:   a.Current,
				Worst:     a.Worst,
				Threshold: a.Threshold,
				Raw:       a.Raw,
				Status:    a.Status.String(),
			})
		}
		disks = append(disks, jd)
	}

	return document{
		Backend:    backend,
		Device:     device,
		Controller: controller,
		Disks:      disks,
		RaidStatus: raidStatus{
			PresentDisks:  snap.PresentDisks,
			ExpectedDisks: snap.ExpectedDisks,
			Degraded:      snap.Degraded,
			Oversized:     snap.Oversized,
			Verdict:       snap.Verdict,
		},
	}
}

// WriteJSON renders the full snapshot as a single pretty-printed JSON
// document.
func WriteJSON(w io.Writer, backend, device string, controller ControllerInfo, snap *jmarray.Snapshot) error {
	doc := buildDocument(backend, device, controller, snap)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteNDJSON renders the snapshot as a single compact JSON line
// carrying a fresh report_id, matching the aggregator collaborator's
// inter-tool contract.
func WriteNDJSON(w io.Writer, backend, device string, controller ControllerInfo, snap *jmarray.Snapshot) error {
	doc := buildDocument(backend, device, controller, snap)
	doc.ReportID = uuid.NewString()
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
