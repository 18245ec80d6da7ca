package product

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductVariant is one purchasable option (size/color combination).
// Variants are fully replaced on every resync, so created_at is not a
// long-lived audit field.
type ProductVariant struct {
	ID                string    `gorm:"column:id;type:char(36);primaryKey"`
	ProductID         string    `gorm:"column:product_id;type:char(36);index;not null"`
	ShopifyID         int64     `gorm:"column:shopify_id;not null"`
	Title             *string   `gorm:"column:title;type:varchar(255)"`
	SKU               *string   `gorm:"column:sku;type:varchar(255)"`
	Price             string    `gorm:"column:price;type:decimal(10,2);not null"`
	CompareAtPrice    *string   `gorm:"column:compare_at_price;type:decimal(10,2)"`
	InventoryQuantity int       `gorm:"column:inventory_quantity"`
	Option1           *string   `gorm:"column:option1;type:varchar(255)"`
	Option2           *string   `gorm:"column:option2;type:varchar(255)"`
	Option3           *string   `gorm:"column:option3;type:varchar(255)"`
	IsAvailable       bool      `gorm:"column:is_available;not null;default:true"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
