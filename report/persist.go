package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sysmonkit/syshealth/monitor"
)

// DefaultFilename derives the output filename from the snapshot timestamp,
// e.g. system_health_20260825_153000.json.
func DefaultFilename(snap monitor.Snapshot) string {
	return "system_health_" + snap.Timestamp.Format("20060102_150405") + ".json"
}

// Save writes the snapshot as indented JSON and returns the filename used.
// An empty filename selects the default timestamped name. Error markers are
// serialized explicitly, so nothing about a degraded snapshot is lost.
func Save(snap monitor.Snapshot, filename string) (string, error) {
	if filename == "" {
		filename = DefaultFilename(snap)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return filename, nil
}

// Load reads a snapshot previously written by Save.
func Load(filename string) (monitor.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return monitor.Snapshot{}, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap monitor.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return monitor.Snapshot{}, fmt.Errorf("failed to decode snapshot file: %w", err)
	}

	return snap, nil
}
