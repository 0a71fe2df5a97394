package monitor

// Default alert ceilings, all on a 0-100 percent scale.
const (
	DefaultCPUThreshold    = 80.0
	DefaultMemoryThreshold = 85.0
	DefaultDiskThreshold   = 90.0
)

// Thresholds holds the percentage ceilings that trigger alerts. Values are on
// a 0-100 scale. The zero value of a field means "use the default".
type Thresholds struct {
	CPUPercent    float64 `yaml:"cpu" json:"cpu_percent"`
	MemoryPercent float64 `yaml:"memory" json:"memory_percent"`
	DiskPercent   float64 `yaml:"disk" json:"disk_percent"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CPUPercent:    DefaultCPUThreshold,
		MemoryPercent: DefaultMemoryThreshold,
		DiskPercent:   DefaultDiskThreshold,
	}
}

// WithDefaults returns a copy with every unset category filled in from the
// defaults.
func (t Thresholds) WithDefaults() Thresholds {
	if t.CPUPercent == 0 {
		t.CPUPercent = DefaultCPUThreshold
	}
	if t.MemoryPercent == 0 {
		t.MemoryPercent = DefaultMemoryThreshold
	}
	if t.DiskPercent == 0 {
		t.DiskPercent = DefaultDiskThreshold
	}
	return t
}
