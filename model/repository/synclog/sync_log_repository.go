package synclog

import (
	"sync"
	"time"

	"gorm.io/gorm"

	entity "indiemarket.GO/model/entity"
)

type SyncLogRepository struct {
	db *gorm.DB
}

var (
	mu        sync.Mutex
	instances = make(map[*gorm.DB]*SyncLogRepository)
)

// GetSyncLogRepository returns the shared repository for db.
func GetSyncLogRepository(db *gorm.DB) *SyncLogRepository {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewSyncLogRepository(db)
	instances[db] = r
	return r
}

func NewSyncLogRepository(db *gorm.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

// Start inserts the running-state row before any network I/O begins.
func (r *SyncLogRepository) Start(brandID string) (*entity.SyncLog, error) {
	log := &entity.SyncLog{
		BrandID: brandID,
		Status:  entity.SyncStatusRunning,
	}
	if err := r.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// Finish writes the single terminal update for a sync attempt.
func (r *SyncLogRepository) Finish(id, status string, found, created, updated int, errorMessage string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":           status,
		"products_found":   found,
		"products_created": created,
		"products_updated": updated,
		"completed_at":     now,
	}
	if errorMessage != "" {
		updates["error_message"] = errorMessage
	}
	return r.db.Model(&entity.SyncLog{}).Where("id = ?", id).Updates(updates).Error
}

// Fail marks a hard failure (fetch or transform blew up before any
// per-product bookkeeping was possible).
func (r *SyncLogRepository) Fail(id, errorMessage string) error {
	now := time.Now()
	return r.db.Model(&entity.SyncLog{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        entity.SyncStatusFailed,
		"error_message": errorMessage,
		"completed_at":  now,
	}).Error
}

// FindRecent returns the newest log rows, optionally for one brand.
func (r *SyncLogRepository) FindRecent(brandID string, limit int) ([]entity.SyncLog, error) {
	if limit <= 0 {
		limit = 20
	}
	q := r.db.Order("started_at DESC").Limit(limit)
	if brandID != "" {
		q = q.Where("brand_id = ?", brandID)
	}
	var logs []entity.SyncLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
