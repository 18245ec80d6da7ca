package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the admin-curated storefront taxonomy, separate from the
// product_type label the sync pipeline assigns. The pipeline reads none of
// this; it exists so the schema stays complete and cascades stay correct.
type Category struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Slug        string    `gorm:"column:slug;type:varchar(255);uniqueIndex;not null"`
	ParentID    *string   `gorm:"column:parent_id;type:char(36);index"`
	Description *string   `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ProductCategory links products to curated categories (many-to-many).
type ProductCategory struct {
	ProductID  string `gorm:"column:product_id;type:char(36);primaryKey"`
	CategoryID string `gorm:"column:category_id;type:char(36);primaryKey"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}
