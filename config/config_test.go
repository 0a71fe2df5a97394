package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysmonkit/syshealth/monitor"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, monitor.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, 30, cfg.Monitor.IntervalSeconds)
	assert.Equal(t, monitor.DefaultTopProcesses, cfg.Monitor.TopProcesses)
	assert.False(t, cfg.History.Enabled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syshealth.yml")
	content := `hostname: db-01
log-location: stdout
thresholds:
  cpu: 70
  disk: 95
monitor:
  interval-seconds: 60
  top-processes: 10
history:
  enabled: true
  sqlite-location: /var/lib/syshealth/history.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db-01", cfg.Hostname)
	assert.Equal(t, 70.0, cfg.Thresholds.CPUPercent)
	assert.Equal(t, 95.0, cfg.Thresholds.DiskPercent)
	// Unset categories fall back to the defaults.
	assert.Equal(t, monitor.DefaultMemoryThreshold, cfg.Thresholds.MemoryPercent)
	assert.Equal(t, 60, cfg.Monitor.IntervalSeconds)
	assert.Equal(t, 10, cfg.Monitor.TopProcesses)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/var/lib/syshealth/history.db", cfg.History.SqliteLocation)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds: [not, a, map]"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
