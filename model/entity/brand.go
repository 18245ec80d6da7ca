package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is one partner seller whose Shopify storefront gets scraped.
type Brand struct {
	ID            string     `gorm:"column:id;type:char(36);primaryKey"`
	Name          string     `gorm:"column:name;type:varchar(255);not null"`
	Slug          string     `gorm:"column:slug;type:varchar(255);uniqueIndex;not null"`
	Description   *string    `gorm:"column:description;type:text"`
	LogoURL       *string    `gorm:"column:logo_url;type:varchar(500)"`
	WebsiteURL    string     `gorm:"column:website_url;type:varchar(500);not null"`
	ShopifyDomain string     `gorm:"column:shopify_domain;type:varchar(255);uniqueIndex;not null"`
	Country       *string    `gorm:"column:country;type:varchar(100)"`
	IsActive      bool       `gorm:"column:is_active;not null;default:true"`
	LastSyncedAt  *time.Time `gorm:"column:last_synced_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
