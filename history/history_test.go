package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysmonkit/syshealth/monitor"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func alertedSnapshot(ts time.Time, cpuPercent float64) monitor.Snapshot {
	snap := monitor.Snapshot{
		Timestamp: ts,
		System:    monitor.Ok(monitor.SystemInfo{Hostname: "testhost"}),
		CPU:       monitor.Ok(monitor.CPUInfo{Percent: cpuPercent}),
		Memory:    monitor.Ok(monitor.MemoryInfo{Percent: 10.0}),
		Disk:      monitor.Ok(monitor.DiskMap{"/": {Percent: 95.0}}),
		Network:   monitor.Ok(monitor.NetworkMap{}),
		Processes: monitor.Ok(monitor.ProcessInfo{}),
	}
	snap.Alerts = monitor.EvaluateAlerts(snap, monitor.DefaultThresholds())
	return snap
}

func TestRecordAndLastAlert(t *testing.T) {
	store := openTestStore(t)

	ts := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	snap := alertedSnapshot(ts, 92.3)
	require.Len(t, snap.Alerts, 2)

	require.NoError(t, store.Record("testhost", snap))

	last, err := store.LastAlert(monitor.CategoryCPU)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "testhost", last.Hostname)
	assert.Equal(t, 92.3, last.Value)
	assert.Equal(t, monitor.DefaultCPUThreshold, last.Threshold)
	assert.True(t, last.ObservedAt.Equal(ts))

	disk, err := store.LastAlert(monitor.CategoryDisk)
	require.NoError(t, err)
	require.NotNil(t, disk)
	assert.Equal(t, "/", disk.Mountpoint)
}

func TestLastAlertReturnsNewest(t *testing.T) {
	store := openTestStore(t)

	first := alertedSnapshot(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC), 85.0)
	second := alertedSnapshot(time.Date(2026, 8, 25, 12, 30, 0, 0, time.UTC), 97.0)
	require.NoError(t, store.Record("testhost", first))
	require.NoError(t, store.Record("testhost", second))

	last, err := store.LastAlert(monitor.CategoryCPU)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 97.0, last.Value)
}

func TestLastAlertEmptyHistory(t *testing.T) {
	store := openTestStore(t)

	last, err := store.LastAlert(monitor.CategoryMemory)
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestRecordHealthySnapshotIsNoop(t *testing.T) {
	store := openTestStore(t)

	snap := monitor.Snapshot{Timestamp: time.Now()}
	require.NoError(t, store.Record("testhost", snap))

	last, err := store.LastAlert(monitor.CategoryCPU)
	require.NoError(t, err)
	assert.Nil(t, last)
}
