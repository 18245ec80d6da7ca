package brand

import (
	"sync"
	"time"

	"gorm.io/gorm"

	entity "indiemarket.GO/model/entity"
)

type BrandRepository struct {
	db *gorm.DB
}

var (
	mu        sync.Mutex
	instances = make(map[*gorm.DB]*BrandRepository)
)

// GetBrandRepository returns the shared repository for db.
func GetBrandRepository(db *gorm.DB) *BrandRepository {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewBrandRepository(db)
	instances[db] = r
	return r
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) FindByID(id string) (*entity.Brand, error) {
	var b entity.Brand
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepository) FindBySlug(slug string) (*entity.Brand, error) {
	var b entity.Brand
	if err := r.db.First(&b, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByIDOrSlug resolves the identifier operators pass to triggers.
func (r *BrandRepository) FindByIDOrSlug(ref string) (*entity.Brand, error) {
	var b entity.Brand
	if err := r.db.First(&b, "id = ? OR slug = ?", ref, ref).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// FindActive returns all brands with is_active = true. No ordering is
// promised to callers beyond what the store provides.
func (r *BrandRepository) FindActive() ([]entity.Brand, error) {
	var brands []entity.Brand
	if err := r.db.Where("is_active = ?", true).Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepository) FindAll() ([]entity.Brand, error) {
	var brands []entity.Brand
	if err := r.db.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepository) Create(b *entity.Brand) error {
	return r.db.Create(b).Error
}

// TouchLastSynced stamps last_synced_at after a completed sync attempt.
func (r *BrandRepository) TouchLastSynced(id string, at time.Time) error {
	return r.db.Model(&entity.Brand{}).Where("id = ?", id).
		Update("last_synced_at", at).Error
}
