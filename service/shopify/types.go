package shopify

import (
	"encoding/json"
	"strings"
	"time"
)

// TagList absorbs both tag encodings Shopify storefronts emit: a native
// JSON array, or one comma-joined string (older shops). Entries are trimmed
// and empties dropped.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*t = splitTags(asString)
		return nil
	}
	var asList []string
	if err := json.Unmarshal(data, &asList); err != nil {
		return err
	}
	out := make(TagList, 0, len(asList))
	for _, tag := range asList {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	*t = out
	return nil
}

func splitTags(s string) TagList {
	if s == "" {
		return TagList{}
	}
	parts := strings.Split(s, ",")
	out := make(TagList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Product is one raw record from /products.json.
type Product struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Handle      string     `json:"handle"`
	BodyHTML    string     `json:"body_html"`
	Vendor      string     `json:"vendor"`
	ProductType string     `json:"product_type"`
	Tags        TagList    `json:"tags"`
	PublishedAt *time.Time `json:"published_at"`
	Variants    []Variant  `json:"variants"`
	Images      []Image    `json:"images"`
}

type Variant struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	Price             string  `json:"price"`
	CompareAtPrice    *string `json:"compare_at_price"`
	SKU               *string `json:"sku"`
	InventoryQuantity int     `json:"inventory_quantity"`
	Option1           *string `json:"option1"`
	Option2           *string `json:"option2"`
	Option3           *string `json:"option3"`
	Available         bool    `json:"available"`
}

type Image struct {
	ID       int64   `json:"id"`
	Src      string  `json:"src"`
	Alt      *string `json:"alt"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Position int     `json:"position"`
}

// Collection is one raw record from /collections.json.
type Collection struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Handle        string `json:"handle"`
	Description   string `json:"description"`
	ProductsCount int    `json:"products_count"`
}

type productsEnvelope struct {
	Products []Product `json:"products"`
}

type collectionsEnvelope struct {
	Collections []Collection `json:"collections"`
}

// ScrapedProduct is the canonical internal representation of one remote
// listing, independent of the remote platform's schema. Prices are decimal
// strings with two-digit scale.
type ScrapedProduct struct {
	ShopifyID      int64
	Title          string
	Slug           string
	Description    *string
	ProductType    string
	CategoryGroup  string
	Vendor         *string
	Tags           []string
	PriceMin       string
	PriceMax       string
	CompareAtPrice *string
	Currency       string
	IsAvailable    bool
	PublishedAt    *time.Time
	Variants       []ScrapedVariant
	Images         []ScrapedImage
}

type ScrapedVariant struct {
	ShopifyID         int64
	Title             *string
	SKU               *string
	Price             string
	CompareAtPrice    *string
	InventoryQuantity int
	Option1           *string
	Option2           *string
	Option3           *string
	IsAvailable       bool
}

type ScrapedImage struct {
	ShopifyID int64
	Src       string
	AltText   *string
	Width     int
	Height    int
	Position  int
}
