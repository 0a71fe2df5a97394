// Package monitor collects host OS metrics into immutable snapshots and
// evaluates them against configurable percentage thresholds. Each category
// (system, cpu, memory, disk, network, processes) fails independently: a
// permission problem on one disk or an unsupported platform API never stops
// the rest of a snapshot from being collected.
package monitor

import "time"

// Monitor is the single entry point collaborators use. It owns the threshold
// configuration for its lifetime and composes snapshot building with alert
// evaluation. It performs no I/O; rendering and persistence belong to the
// caller.
type Monitor struct {
	thresholds Thresholds
	builder    *Builder
}

// New builds a Monitor over the given source. Unset threshold categories fall
// back to the defaults; topN <= 0 falls back to DefaultTopProcesses.
func New(src Source, thresholds Thresholds, topN int) *Monitor {
	builder := NewBuilder(src)
	if topN > 0 {
		builder.TopN = topN
	}
	return &Monitor{
		thresholds: thresholds.WithDefaults(),
		builder:    builder,
	}
}

// Thresholds returns the active threshold configuration.
func (m *Monitor) Thresholds() Thresholds {
	return m.thresholds
}

// Collect produces a fresh snapshot with its alerts attached. Every call is
// an independent unit of work; nothing is shared between snapshots.
func (m *Monitor) Collect() Snapshot {
	snap := m.builder.Build(time.Now())
	snap.Alerts = EvaluateAlerts(snap, m.thresholds)
	return snap
}
