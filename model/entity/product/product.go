package product

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is one marketplace listing. Identity for sync purposes is the
// (brand_id, shopify_id) pair — never the slug, which can collide across
// remote stores, and never the internal id, which is unknown before insert.
type Product struct {
	ID             string                       `gorm:"column:id;type:char(36);primaryKey"`
	BrandID        string                       `gorm:"column:brand_id;type:char(36);not null;index;uniqueIndex:uniq_products_brand_shopify"`
	ShopifyID      int64                        `gorm:"column:shopify_id;not null;uniqueIndex:uniq_products_brand_shopify"`
	Title          string                       `gorm:"column:title;type:varchar(500);not null"`
	Slug           string                       `gorm:"column:slug;type:varchar(500);index;not null"`
	Description    *string                      `gorm:"column:description;type:text"`
	ProductType    string                       `gorm:"column:product_type;type:varchar(255);index"`
	CategoryGroup  string                       `gorm:"column:category_group;type:varchar(100)"`
	Vendor         *string                      `gorm:"column:vendor;type:varchar(255)"`
	Tags           datatypes.JSONSlice[string]  `gorm:"column:tags"`
	PriceMin       string                       `gorm:"column:price_min;type:decimal(10,2)"`
	PriceMax       string                       `gorm:"column:price_max;type:decimal(10,2)"`
	Currency       string                       `gorm:"column:currency;type:varchar(3);default:EUR"`
	CompareAtPrice *string                      `gorm:"column:compare_at_price;type:decimal(10,2)"`
	IsAvailable    bool                         `gorm:"column:is_available;not null;default:true"`
	IsNew          bool                         `gorm:"column:is_new;not null;default:false;index"`
	PublishedAt    *time.Time                   `gorm:"column:published_at"`
	CreatedAt      time.Time                    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                    `gorm:"column:updated_at;autoUpdateTime"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images   []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
