package monitor

import (
	"sync"
	"time"
)

// Builder assembles one Snapshot from a Source. The six category queries are
// independent and write to disjoint snapshot fields, so they run in parallel
// and are joined before the snapshot is returned.
type Builder struct {
	Source Source
	TopN   int
}

func NewBuilder(src Source) *Builder {
	return &Builder{Source: src, TopN: DefaultTopProcesses}
}

// Build queries every category exactly once and stamps the snapshot with the
// given timestamp. It never fails: a failed query lands in its field as an
// error marker and the other categories are unaffected.
func (b *Builder) Build(timestamp time.Time) Snapshot {
	snap := Snapshot{Timestamp: timestamp}

	var wg sync.WaitGroup
	wg.Add(6)
	go func() { defer wg.Done(); snap.System = b.Source.QuerySystem() }()
	go func() { defer wg.Done(); snap.CPU = b.Source.QueryCPU() }()
	go func() { defer wg.Done(); snap.Memory = b.Source.QueryMemory() }()
	go func() { defer wg.Done(); snap.Disk = b.Source.QueryDisk() }()
	go func() { defer wg.Done(); snap.Network = b.Source.QueryNetwork() }()
	go func() { defer wg.Done(); snap.Processes = b.Source.QueryProcesses(b.TopN) }()
	wg.Wait()

	return snap
}
