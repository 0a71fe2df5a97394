package monitor

import "fmt"

type Category string

const (
	CategoryCPU    Category = "cpu"
	CategoryMemory Category = "memory"
	CategoryDisk   Category = "disk"
)

// Alert records one metric that exceeded its configured threshold. Created
// during evaluation and never mutated afterwards.
type Alert struct {
	Category   Category `json:"category"`
	Mountpoint string   `json:"mountpoint,omitempty"`
	Message    string   `json:"message"`
	Value      float64  `json:"value"`
	Threshold  float64  `json:"threshold"`
}

// EvaluateAlerts checks a snapshot against the given thresholds and returns
// the alerts in a fixed category order: cpu, memory, then disk mounts in
// sorted mountpoint order. The boundary is strictly greater-than; a metric
// exactly at its threshold does not alert. Categories whose query failed are
// skipped, since there is no value to compare.
func EvaluateAlerts(snap Snapshot, thresholds Thresholds) []Alert {
	var alerts []Alert

	if snap.CPU.OK() && snap.CPU.Data.Percent > thresholds.CPUPercent {
		alerts = append(alerts, Alert{
			Category:  CategoryCPU,
			Message:   fmt.Sprintf("HIGH CPU USAGE: %.1f%% (threshold: %.1f%%)", snap.CPU.Data.Percent, thresholds.CPUPercent),
			Value:     snap.CPU.Data.Percent,
			Threshold: thresholds.CPUPercent,
		})
	}

	if snap.Memory.OK() && snap.Memory.Data.Percent > thresholds.MemoryPercent {
		alerts = append(alerts, Alert{
			Category:  CategoryMemory,
			Message:   fmt.Sprintf("HIGH MEMORY USAGE: %.1f%% (threshold: %.1f%%)", snap.Memory.Data.Percent, thresholds.MemoryPercent),
			Value:     snap.Memory.Data.Percent,
			Threshold: thresholds.MemoryPercent,
		})
	}

	if snap.Disk.OK() {
		for _, mount := range snap.Disk.Data.SortedMounts() {
			usage := (*snap.Disk.Data)[mount]
			if usage.Percent > thresholds.DiskPercent {
				alerts = append(alerts, Alert{
					Category:   CategoryDisk,
					Mountpoint: mount,
					Message:    fmt.Sprintf("HIGH DISK USAGE: %s at %.1f%% (threshold: %.1f%%)", mount, usage.Percent, thresholds.DiskPercent),
					Value:      usage.Percent,
					Threshold:  thresholds.DiskPercent,
				})
			}
		}
	}

	return alerts
}
