package product

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductImage is one image asset; position defines display order.
// Same full-replace-on-resync policy as variants.
type ProductImage struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey"`
	ProductID string    `gorm:"column:product_id;type:char(36);index;not null"`
	ShopifyID int64     `gorm:"column:shopify_id"`
	Src       string    `gorm:"column:src;type:varchar(1000);not null"`
	AltText   *string   `gorm:"column:alt_text;type:varchar(500)"`
	Width     int       `gorm:"column:width"`
	Height    int       `gorm:"column:height"`
	Position  int       `gorm:"column:position;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
