package monitor

import (
	"math"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gopsnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
)

// processHandle is one live entry of the process table. Reads can fail
// per-process when an entry vanishes or is inaccessible mid-scan.
type processHandle interface {
	PID() int32
	Name() (string, error)
	CPUPercent() (float64, error)
	MemoryPercent() (float32, error)
}

type gopsutilProcess struct {
	*process.Process
}

func (p gopsutilProcess) PID() int32 { return p.Pid }

// SystemSource reads live metrics from the local host via gopsutil.
type SystemSource struct {
	// SampleInterval is how long CPU usage sampling observes the system.
	SampleInterval time.Duration

	// Unset fields fall back to the gopsutil calls.
	listPartitions func(all bool) ([]disk.PartitionStat, error)
	diskUsage      func(path string) (*disk.UsageStat, error)
	listProcesses  func() ([]processHandle, error)
}

func NewSystemSource() *SystemSource {
	return &SystemSource{SampleInterval: time.Second}
}

func listGopsutilProcesses() ([]processHandle, error) {
	processes, err := process.Processes()
	if err != nil {
		return nil, err
	}
	handles := make([]processHandle, 0, len(processes))
	for _, p := range processes {
		handles = append(handles, gopsutilProcess{p})
	}
	return handles, nil
}

func (s *SystemSource) QuerySystem() Result[SystemInfo] {
	info, err := host.Info()
	if err != nil {
		return Fail[SystemInfo]("failed to get system info: %v", err)
	}

	return Ok(SystemInfo{
		Hostname:     info.Hostname,
		Platform:     info.OS,
		Architecture: info.KernelArch,
		BootTime:     time.Unix(int64(info.BootTime), 0),
		UptimeHours:  round2(float64(info.Uptime) / 3600),
	})
}

func (s *SystemSource) QueryCPU() Result[CPUInfo] {
	percent, err := cpu.Percent(s.SampleInterval, false)
	if err != nil {
		return Fail[CPUInfo]("failed to get CPU usage: %v", err)
	}
	if len(percent) == 0 {
		return Fail[CPUInfo]("failed to get CPU usage: no samples returned")
	}

	logical, err := cpu.Counts(true)
	if err != nil {
		return Fail[CPUInfo]("failed to get CPU core count: %v", err)
	}
	physical, err := cpu.Counts(false)
	if err != nil {
		return Fail[CPUInfo]("failed to get CPU core count: %v", err)
	}

	info := CPUInfo{
		Percent:       round2(percent[0]),
		CountLogical:  logical,
		CountPhysical: physical,
	}

	// Frequency and load average are unsupported on some platforms; leave
	// them unset rather than failing the category.
	if freq, err := cpu.Info(); err == nil && len(freq) > 0 {
		info.FrequencyMHz = round2(freq[0].Mhz)
	}
	if avg, err := load.Avg(); err == nil {
		info.LoadAverage = &LoadAverages{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}
	}

	return Ok(info)
}

func (s *SystemSource) QueryMemory() Result[MemoryInfo] {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Fail[MemoryInfo]("failed to get virtual memory stats: %v", err)
	}
	swap, err := mem.SwapMemory()
	if err != nil {
		return Fail[MemoryInfo]("failed to get swap memory stats: %v", err)
	}

	// vm.UsedPercent counts cached and buffered memory as used; compute the
	// actual usage from what is available instead.
	percent := 0.0
	if vm.Total > 0 {
		percent = float64(vm.Total-vm.Available) / float64(vm.Total) * 100
	}

	return Ok(MemoryInfo{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		Percent:     round2(percent),
		SwapTotal:   swap.Total,
		SwapUsed:    swap.Used,
		SwapPercent: round2(swap.UsedPercent),
	})
}

func (s *SystemSource) QueryDisk() Result[DiskMap] {
	listPartitions := s.listPartitions
	if listPartitions == nil {
		listPartitions = disk.Partitions
	}
	diskUsage := s.diskUsage
	if diskUsage == nil {
		diskUsage = disk.Usage
	}

	partitions, err := listPartitions(false)
	if err != nil {
		return Fail[DiskMap]("failed to get disk partitions: %v", err)
	}

	disks := make(DiskMap, len(partitions))
	for _, partition := range partitions {
		usage, err := diskUsage(partition.Mountpoint)
		if err != nil {
			// Partitions we cannot access are skipped, not fatal.
			continue
		}
		disks[partition.Mountpoint] = DiskUsage{
			Device:     partition.Device,
			Filesystem: partition.Fstype,
			Total:      usage.Total,
			Used:       usage.Used,
			Free:       usage.Free,
			Percent:    round2(usage.UsedPercent),
		}
	}

	return Ok(disks)
}

func (s *SystemSource) QueryNetwork() Result[NetworkMap] {
	counters, err := gopsnet.IOCounters(true)
	if err != nil {
		return Fail[NetworkMap]("failed to get network counters: %v", err)
	}

	interfaces := make(NetworkMap, len(counters))
	for _, c := range counters {
		interfaces[c.Name] = NetIOCounters{
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
			ErrorsIn:    c.Errin,
			ErrorsOut:   c.Errout,
		}
	}

	return Ok(interfaces)
}

func (s *SystemSource) QueryProcesses(topN int) Result[ProcessInfo] {
	if topN <= 0 {
		topN = DefaultTopProcesses
	}

	listProcesses := s.listProcesses
	if listProcesses == nil {
		listProcesses = listGopsutilProcesses
	}

	processes, err := listProcesses()
	if err != nil {
		return Fail[ProcessInfo]("failed to get processes: %v", err)
	}

	samples := make([]ProcessSample, 0, len(processes))
	for _, p := range processes {
		cpuPercent, err := p.CPUPercent()
		if err != nil {
			// Vanished or inaccessible mid-scan, skip it.
			continue
		}
		memPercent, err := p.MemoryPercent()
		if err != nil {
			continue
		}
		name, _ := p.Name()

		samples = append(samples, ProcessSample{
			PID:           p.PID(),
			Name:          name,
			CPUPercent:    cpuPercent,
			MemoryPercent: float64(memPercent),
		})
	}

	return Ok(ProcessInfo{
		Total:     len(samples),
		TopCPU:    rankProcesses(samples, topN, func(p ProcessSample) float64 { return p.CPUPercent }),
		TopMemory: rankProcesses(samples, topN, func(p ProcessSample) float64 { return p.MemoryPercent }),
	})
}

// rankProcesses sorts a copy of samples by the given usage key, descending,
// ties broken by PID ascending for determinism, truncated to topN.
func rankProcesses(samples []ProcessSample, topN int, key func(ProcessSample) float64) []ProcessSample {
	ranked := make([]ProcessSample, len(samples))
	copy(ranked, samples)

	sort.Slice(ranked, func(i, j int) bool {
		if key(ranked[i]) == key(ranked[j]) {
			return ranked[i].PID < ranked[j].PID
		}
		return key(ranked[i]) > key(ranked[j])
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
