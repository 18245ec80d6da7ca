package product

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	productEntity "indiemarket.GO/model/entity/product"
)

type ProductRepository struct {
	db *gorm.DB
}

var (
	mu        sync.Mutex
	instances = make(map[*gorm.DB]*ProductRepository)
)

// GetProductRepository returns the shared repository for db.
func GetProductRepository(db *gorm.DB) *ProductRepository {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewProductRepository(db)
	instances[db] = r
	return r
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByBrandAndShopifyID looks a product up by its sync identity key.
// Returns (nil, nil) when no row exists.
func (r *ProductRepository) FindByBrandAndShopifyID(brandID string, shopifyID int64) (*productEntity.Product, error) {
	var p productEntity.Product
	err := r.db.Where("brand_id = ? AND shopify_id = ?", brandID, shopifyID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ResetIsNew clears the is_new flag for every product of a brand. Must run
// before a sync fetches anything, so only rows created by that run keep
// is_new = true.
func (r *ProductRepository) ResetIsNew(brandID string) error {
	return r.db.Model(&productEntity.Product{}).
		Where("brand_id = ? AND is_new = ?", brandID, true).
		Update("is_new", false).Error
}

// Insert writes a new product together with its variants and images in one
// transaction.
func (r *ProductRepository) Insert(p *productEntity.Product, variants []productEntity.ProductVariant, images []productEntity.ProductImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return insertChildren(tx, p.ID, variants, images)
	})
}

// UpdateAvailability touches only is_available and updated_at, and swaps the
// variant and image sets, all in one transaction. Everything else on an
// existing row is protected from routine syncs.
func (r *ProductRepository) UpdateAvailability(productID string, isAvailable bool, variants []productEntity.ProductVariant, images []productEntity.ProductImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&productEntity.Product{}).Where("id = ?", productID).
			Updates(map[string]interface{}{
				"is_available": isAvailable,
				"updated_at":   time.Now(),
			}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&productEntity.ProductVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", productID).Delete(&productEntity.ProductImage{}).Error; err != nil {
			return err
		}
		return insertChildren(tx, productID, variants, images)
	})
}

func insertChildren(tx *gorm.DB, productID string, variants []productEntity.ProductVariant, images []productEntity.ProductImage) error {
	for i := range variants {
		variants[i].ID = ""
		variants[i].ProductID = productID
	}
	for i := range images {
		images[i].ID = ""
		images[i].ProductID = productID
	}
	if len(variants) > 0 {
		if err := tx.Create(&variants).Error; err != nil {
			return err
		}
	}
	if len(images) > 0 {
		if err := tx.Create(&images).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateProductType overwrites the stored category label. Only the
// recategorize maintenance path may call this.
func (r *ProductRepository) UpdateProductType(productID, productType, categoryGroup string) error {
	return r.db.Model(&productEntity.Product{}).Where("id = ?", productID).
		Updates(map[string]interface{}{
			"product_type":   productType,
			"category_group": categoryGroup,
			"updated_at":     time.Now(),
		}).Error
}

func (r *ProductRepository) FindByBrand(brandID string) ([]productEntity.Product, error) {
	var products []productEntity.Product
	if err := r.db.Where("brand_id = ?", brandID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindAll() ([]productEntity.Product, error) {
	var products []productEntity.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) CountVariants(productID string) (int64, error) {
	var n int64
	err := r.db.Model(&productEntity.ProductVariant{}).Where("product_id = ?", productID).Count(&n).Error
	return n, err
}
