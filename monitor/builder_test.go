package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource returns canned results so builder behavior can be tested without
// touching the OS.
type fakeSource struct {
	system    Result[SystemInfo]
	cpu       Result[CPUInfo]
	memory    Result[MemoryInfo]
	disk      Result[DiskMap]
	network   Result[NetworkMap]
	processes Result[ProcessInfo]

	topNSeen int
}

func (f *fakeSource) QuerySystem() Result[SystemInfo]   { return f.system }
func (f *fakeSource) QueryCPU() Result[CPUInfo]         { return f.cpu }
func (f *fakeSource) QueryMemory() Result[MemoryInfo]   { return f.memory }
func (f *fakeSource) QueryDisk() Result[DiskMap]        { return f.disk }
func (f *fakeSource) QueryNetwork() Result[NetworkMap]  { return f.network }
func (f *fakeSource) QueryProcesses(topN int) Result[ProcessInfo] {
	f.topNSeen = topN
	return f.processes
}

func healthySource() *fakeSource {
	return &fakeSource{
		system:    Ok(SystemInfo{Hostname: "testhost", Platform: "linux"}),
		cpu:       Ok(CPUInfo{Percent: 12.5, CountLogical: 8, CountPhysical: 4}),
		memory:    Ok(MemoryInfo{Percent: 40.0}),
		disk:      Ok(DiskMap{"/": {Percent: 55.0}}),
		network:   Ok(NetworkMap{"eth0": {BytesSent: 100}}),
		processes: Ok(ProcessInfo{Total: 3}),
	}
}

func TestBuildStampsTimestamp(t *testing.T) {
	ts := time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)
	snap := NewBuilder(healthySource()).Build(ts)

	assert.Equal(t, ts, snap.Timestamp)
}

func TestBuildAllCategoriesPresent(t *testing.T) {
	snap := NewBuilder(healthySource()).Build(time.Now())

	assert.True(t, snap.System.OK())
	assert.True(t, snap.CPU.OK())
	assert.True(t, snap.Memory.OK())
	assert.True(t, snap.Disk.OK())
	assert.True(t, snap.Network.OK())
	assert.True(t, snap.Processes.OK())
}

func TestBuildIsolatesCategoryFailures(t *testing.T) {
	src := healthySource()
	src.cpu = Fail[CPUInfo]("failed to get CPU usage: not supported")
	src.disk = Fail[DiskMap]("failed to get disk partitions: permission denied")

	snap := NewBuilder(src).Build(time.Now())

	// Failed categories carry their cause, everything else is untouched.
	assert.False(t, snap.CPU.OK())
	assert.Equal(t, "failed to get CPU usage: not supported", snap.CPU.Err)
	assert.False(t, snap.Disk.OK())

	assert.True(t, snap.System.OK())
	assert.True(t, snap.Memory.OK())
	assert.True(t, snap.Network.OK())
	assert.True(t, snap.Processes.OK())
}

func TestBuilderPassesTopN(t *testing.T) {
	src := healthySource()
	builder := NewBuilder(src)
	builder.TopN = 7
	builder.Build(time.Now())

	assert.Equal(t, 7, src.topNSeen)
}

func TestMonitorCollectAttachesAlerts(t *testing.T) {
	src := healthySource()
	src.cpu = Ok(CPUInfo{Percent: 92.3})

	mon := New(src, Thresholds{CPUPercent: 80}, 0)
	snap := mon.Collect()

	require.Len(t, snap.Alerts, 1)
	assert.Equal(t, CategoryCPU, snap.Alerts[0].Category)
}

func TestMonitorFillsThresholdDefaults(t *testing.T) {
	mon := New(healthySource(), Thresholds{CPUPercent: 70}, 0)

	assert.Equal(t, 70.0, mon.Thresholds().CPUPercent)
	assert.Equal(t, DefaultMemoryThreshold, mon.Thresholds().MemoryPercent)
	assert.Equal(t, DefaultDiskThreshold, mon.Thresholds().DiskPercent)
}

func TestMonitorCollectIsIndependentPerCall(t *testing.T) {
	src := healthySource()
	mon := New(src, Thresholds{}, 0)

	first := mon.Collect()
	src.cpu = Ok(CPUInfo{Percent: 99.0})
	second := mon.Collect()

	assert.Equal(t, 12.5, first.CPU.Data.Percent)
	assert.Equal(t, 99.0, second.CPU.Data.Percent)
}
