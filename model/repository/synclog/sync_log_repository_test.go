package synclog

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "indiemarket.GO/model/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.SyncLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestStart_InsertsRunningRow(t *testing.T) {
	repo := NewSyncLogRepository(testDB(t))
	log, err := repo.Start("brand-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if log.ID == "" {
		t.Error("ID not assigned")
	}
	if log.Status != entity.SyncStatusRunning {
		t.Errorf("Status = %q, want running", log.Status)
	}
	if log.CompletedAt != nil {
		t.Error("CompletedAt should be nil while running")
	}
}

func TestFinish_WritesTerminalState(t *testing.T) {
	repo := NewSyncLogRepository(testDB(t))
	log, _ := repo.Start("brand-1")

	err := repo.Finish(log.ID, entity.SyncStatusCompletedWithErrors, 10, 3, 6, "Failed to process product X: boom")
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	rows, err := repo.FindRecent("brand-1", 10)
	if err != nil {
		t.Fatalf("FindRecent: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	got := rows[0]
	if got.Status != entity.SyncStatusCompletedWithErrors {
		t.Errorf("Status = %q", got.Status)
	}
	if got.ProductsFound != 10 || got.ProductsCreated != 3 || got.ProductsUpdated != 6 {
		t.Errorf("counts = %d/%d/%d, want 10/3/6", got.ProductsFound, got.ProductsCreated, got.ProductsUpdated)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage == "" {
		t.Error("ErrorMessage not recorded")
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
}

func TestFinish_NoErrorMessageLeavesNull(t *testing.T) {
	repo := NewSyncLogRepository(testDB(t))
	log, _ := repo.Start("brand-1")

	if err := repo.Finish(log.ID, entity.SyncStatusCompleted, 5, 5, 0, ""); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	rows, _ := repo.FindRecent("brand-1", 1)
	if rows[0].ErrorMessage != nil {
		t.Errorf("ErrorMessage = %q, want nil", *rows[0].ErrorMessage)
	}
}

func TestFail(t *testing.T) {
	repo := NewSyncLogRepository(testDB(t))
	log, _ := repo.Start("brand-1")

	if err := repo.Fail(log.ID, "fetch products: connection refused"); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	rows, _ := repo.FindRecent("brand-1", 1)
	got := rows[0]
	if got.Status != entity.SyncStatusFailed {
		t.Errorf("Status = %q, want failed", got.Status)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "fetch products: connection refused" {
		t.Errorf("ErrorMessage = %v", got.ErrorMessage)
	}
}

func TestFindRecent_FiltersAndLimits(t *testing.T) {
	repo := NewSyncLogRepository(testDB(t))
	for i := 0; i < 25; i++ {
		log, _ := repo.Start("brand-1")
		repo.Finish(log.ID, entity.SyncStatusCompleted, i, 0, 0, "")
		time.Sleep(time.Millisecond)
	}
	other, _ := repo.Start("brand-2")
	repo.Finish(other.ID, entity.SyncStatusCompleted, 0, 0, 0, "")

	rows, err := repo.FindRecent("brand-1", 0)
	if err != nil {
		t.Fatalf("FindRecent: %v", err)
	}
	if len(rows) != 20 {
		t.Errorf("default limit rows = %d, want 20", len(rows))
	}
	for _, r := range rows {
		if r.BrandID != "brand-1" {
			t.Errorf("row for %q leaked into brand-1 filter", r.BrandID)
		}
	}

	all, _ := repo.FindRecent("", 100)
	if len(all) != 26 {
		t.Errorf("unfiltered rows = %d, want 26", len(all))
	}
}
