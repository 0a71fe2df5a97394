// Package history keeps a local record of emitted alerts in sqlite, so a host
// retains context about past threshold breaches between runs.
package history

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sysmonkit/syshealth/monitor"
)

// AlertRecord is one persisted alert occurrence.
type AlertRecord struct {
	gorm.Model
	Hostname   string `gorm:"index"`
	Category   string `gorm:"index"`
	Mountpoint string
	Message    string
	Value      float64
	Threshold  float64
	ObservedAt time.Time
}

type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path, creating it and migrating the
// schema as needed.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.AutoMigrate(&AlertRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores every alert of the snapshot, stamped with the snapshot time.
func (s *Store) Record(hostname string, snap monitor.Snapshot) error {
	if len(snap.Alerts) == 0 {
		return nil
	}

	records := make([]AlertRecord, 0, len(snap.Alerts))
	for _, alert := range snap.Alerts {
		records = append(records, AlertRecord{
			Hostname:   hostname,
			Category:   string(alert.Category),
			Mountpoint: alert.Mountpoint,
			Message:    alert.Message,
			Value:      alert.Value,
			Threshold:  alert.Threshold,
			ObservedAt: snap.Timestamp,
		})
	}

	if err := s.db.Create(&records).Error; err != nil {
		return fmt.Errorf("failed to record alerts: %w", err)
	}
	return nil
}

// LastAlert returns the most recent recorded alert for a category, or nil if
// the category never alerted.
func (s *Store) LastAlert(category monitor.Category) (*AlertRecord, error) {
	var record AlertRecord
	result := s.db.
		Where("category = ?", string(category)).
		Order("id DESC").
		Limit(1).
		Find(&record)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to get last alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &record, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
