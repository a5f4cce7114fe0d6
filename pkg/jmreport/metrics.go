package jmreport

import (
	"io"
	"strconv"

	"github.com/jamietre/jm-raid-status/pkg/jmarray"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

type metricCollector struct {
	metrics []prometheus.Metric
}

func (mc *metricCollector) Collect(c chan<- prometheus.Metric) {
	for _, m := range mc.metrics {
		c <- m
	}
}

func (mc *metricCollector) Describe(c chan<- *prometheus.Desc) {}

// WriteMetrics renders the snapshot in OpenMetrics text exposition
// format, suitable for a node-exporter textfile collector drop-in.
func WriteMetrics(w io.Writer, device string, snap *jmarray.Snapshot) error {
	var (
		diskInfo = prometheus.NewDesc(
			"jm_raid_disk_info",
			"Info metric for a disk slot behind the bridge",
			[]string{"device", "slot", "model", "serial", "firmware"}, nil,
		)
		diskPresent = prometheus.NewDesc(
			"jm_raid_disk_present",
			"Whether a disk slot is populated",
			[]string{"device", "slot"}, nil,
		)
		diskHealthy = prometheus.NewDesc(
			"jm_raid_disk_healthy",
			"Whether a present disk passed its SMART health assessment",
			[]string{"device", "slot"}, nil,
		)
		arrayPresentDisks = prometheus.NewDesc(
			"jm_raid_array_present_disks",
			"Number of disks present in the array",
			[]string{"device"}, nil,
		)
		arrayDegraded = prometheus.NewDesc(
			"jm_raid_array_degraded",
			"Whether the array has fewer disks than expected",
			[]string{"device"}, nil,
		)
		arrayHealthy = prometheus.NewDesc(
			"jm_raid_array_healthy",
			"Whether the array verdict is passed",
			[]string{"device"}, nil,
		)
	)

	mc := &metricCollector{}
	for _, d := range snap.Disks {
		slot := strconv.Itoa(d.Slot)
		present := boolValue(d.Present)
		mc.metrics = append(mc.metrics, prometheus.MustNewConstMetric(diskPresent, prometheus.GaugeValue, present, device, slot))
		if !d.Present {
			continue
		}
		mc.metrics = append(mc.metrics, prometheus.MustNewConstMetric(
			diskInfo, prometheus.GaugeValue, 1, device, slot, d.Model, d.Serial, d.Firmware))
		healthy := boolValue(d.OverallStatus == jmarray.StatusPassed)
		mc.metrics = append(mc.metrics, prometheus.MustNewConstMetric(diskHealthy, prometheus.GaugeValue, healthy, device, slot))
	}
	mc.metrics = append(mc.metrics,
		prometheus.MustNewConstMetric(arrayPresentDisks, prometheus.GaugeValue, float64(snap.PresentDisks), device),
		prometheus.MustNewConstMetric(arrayDegraded, prometheus.GaugeValue, boolValue(snap.Degraded), device),
		prometheus.MustNewConstMetric(arrayHealthy, prometheus.GaugeValue, boolValue(snap.Verdict == jmarray.StatusPassed), device),
	)

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(mc); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToOpenMetrics(w, mf); err != nil {
			return err
		}
	}
	_, err = expfmt.FinalizeOpenMetrics(w)
	return err
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
