package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sync log statuses. A row is inserted as running before any network I/O
// and receives exactly one terminal update.
const (
	SyncStatusRunning             = "running"
	SyncStatusCompleted           = "completed"
	SyncStatusCompletedWithErrors = "completed_with_errors"
	SyncStatusFailed              = "failed"
)

// SyncLog is the append-only audit record of one sync attempt for one brand.
type SyncLog struct {
	ID              string     `gorm:"column:id;type:char(36);primaryKey"`
	BrandID         string     `gorm:"column:brand_id;type:char(36);index;not null"`
	Status          string     `gorm:"column:status;type:varchar(50);index;not null"`
	ProductsFound   int        `gorm:"column:products_found;not null;default:0"`
	ProductsCreated int        `gorm:"column:products_created;not null;default:0"`
	ProductsUpdated int        `gorm:"column:products_updated;not null;default:0"`
	ErrorMessage    *string    `gorm:"column:error_message;type:text"`
	StartedAt       time.Time  `gorm:"column:started_at;autoCreateTime"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
}

func (SyncLog) TableName() string {
	return "sync_logs"
}

func (s *SyncLog) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
