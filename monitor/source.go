package monitor

// DefaultTopProcesses is how many processes each top-list keeps when no other
// limit is configured.
const DefaultTopProcesses = 5

// Source abstracts access to OS-level counters. The six queries are mutually
// independent: each returns a Result for its own category, and a failure in
// one must never prevent or corrupt another. Implementations may block
// briefly (CPU sampling observes two points in time) but the blocking stays
// local to that query.
type Source interface {
	QuerySystem() Result[SystemInfo]
	QueryCPU() Result[CPUInfo]
	QueryMemory() Result[MemoryInfo]
	QueryDisk() Result[DiskMap]
	QueryNetwork() Result[NetworkMap]
	QueryProcesses(topN int) Result[ProcessInfo]
}
