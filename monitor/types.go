package monitor

import (
	"sort"
	"time"
)

// SystemInfo identifies the host and how long it has been up.
type SystemInfo struct {
	Hostname     string    `json:"hostname"`
	Platform     string    `json:"platform"`
	Architecture string    `json:"architecture"`
	BootTime     time.Time `json:"boot_time"`
	UptimeHours  float64   `json:"uptime_hours"`
}

// LoadAverages are the classic 1/5/15 minute run-queue averages. Not every
// platform exposes them, so CPUInfo carries them as a pointer.
type LoadAverages struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

type CPUInfo struct {
	Percent       float64 `json:"percent"`
	CountLogical  int     `json:"count_logical"`
	CountPhysical int     `json:"count_physical"`
	// FrequencyMHz and LoadAverage are best-effort: unavailable on some
	// platforms without failing the whole category.
	FrequencyMHz float64       `json:"frequency_mhz,omitempty"`
	LoadAverage  *LoadAverages `json:"load_average,omitempty"`
}

type MemoryInfo struct {
	Total       uint64  `json:"total_bytes"`
	Available   uint64  `json:"available_bytes"`
	Used        uint64  `json:"used_bytes"`
	Percent     float64 `json:"percent"`
	SwapTotal   uint64  `json:"swap_total_bytes"`
	SwapUsed    uint64  `json:"swap_used_bytes"`
	SwapPercent float64 `json:"swap_percent"`
}

type DiskUsage struct {
	Device     string  `json:"device"`
	Filesystem string  `json:"filesystem"`
	Total      uint64  `json:"total_bytes"`
	Used       uint64  `json:"used_bytes"`
	Free       uint64  `json:"free_bytes"`
	Percent    float64 `json:"percent"`
}

// DiskMap keys disk usage by mountpoint.
type DiskMap map[string]DiskUsage

// SortedMounts is the deterministic iteration order for a disk map: sorted
// mountpoints. Alert evaluation and rendering both walk disks in this order.
func (d DiskMap) SortedMounts() []string {
	mounts := make([]string, 0, len(d))
	for mount := range d {
		mounts = append(mounts, mount)
	}
	sort.Strings(mounts)
	return mounts
}

type NetIOCounters struct {
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
	ErrorsIn    uint64 `json:"errors_in"`
	ErrorsOut   uint64 `json:"errors_out"`
}

// NetworkMap keys I/O counters by interface name.
type NetworkMap map[string]NetIOCounters

type ProcessSample struct {
	PID           int32   `json:"pid"`
	Name          string  `json:"name"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

// ProcessInfo summarizes the process table. Total counts only entries that
// could actually be read; processes that vanished mid-scan are not in it.
type ProcessInfo struct {
	Total     int             `json:"total"`
	TopCPU    []ProcessSample `json:"top_cpu"`
	TopMemory []ProcessSample `json:"top_memory"`
}

// Snapshot is one point-in-time picture of host health. Every category field
// is always present, carrying either data or an error marker; building a
// snapshot never fails.
type Snapshot struct {
	Timestamp time.Time           `json:"timestamp"`
	System    Result[SystemInfo]  `json:"system"`
	CPU       Result[CPUInfo]     `json:"cpu"`
	Memory    Result[MemoryInfo]  `json:"memory"`
	Disk      Result[DiskMap]     `json:"disk"`
	Network   Result[NetworkMap]  `json:"network"`
	Processes Result[ProcessInfo] `json:"processes"`
	Alerts    []Alert             `json:"alerts"`
}
