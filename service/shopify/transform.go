package shopify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"indiemarket.GO/core/classifier"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// StripHTML flattens markup to plain text for substring matching. The
// original HTML is what gets stored; this output is only fed to the
// classifier.
func StripHTML(html string) string {
	s := htmlTagRe.ReplaceAllString(html, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// categoryResolver returns a category for a product, or nil to pass to the
// next resolver in the chain.
type categoryResolver func(p *Product, strippedDescription string) *classifier.Result

// resolverChain builds the fallback chain: collection override → remote
// product_type reclassified → full classifier on title+description. The
// last resolver is total, so the chain always yields a result.
func resolverChain(override *classifier.Result) []categoryResolver {
	return []categoryResolver{
		func(*Product, string) *classifier.Result {
			return override
		},
		func(p *Product, _ string) *classifier.Result {
			pt := strings.TrimSpace(p.ProductType)
			if pt == "" {
				return nil
			}
			// The remote label wins; only the group comes from
			// reclassifying it, defaulting to Clothing when the
			// classifier can't place it.
			res := classifier.Classify(pt, "")
			group := res.CategoryGroup
			if res.Category == classifier.CategoryOther {
				group = classifier.GroupClothing
			}
			return &classifier.Result{Category: pt, CategoryGroup: group, Confidence: res.Confidence}
		},
		func(p *Product, strippedDescription string) *classifier.Result {
			res := classifier.Classify(p.Title, strippedDescription)
			return &res
		},
	}
}

// Transform converts one raw feed record into the canonical representation.
// A product without variants is a transform error: there is no price range
// to derive, and the caller records it rather than crashing the sync.
func Transform(p *Product, currency string, override *classifier.Result) (*ScrapedProduct, error) {
	if len(p.Variants) == 0 {
		return nil, fmt.Errorf("product %q (%d) has no variants", p.Title, p.ID)
	}

	var priceMin, priceMax decimal.Decimal
	var compareAt *decimal.Decimal
	isAvailable := false

	for i, v := range p.Variants {
		price, err := decimal.NewFromString(v.Price)
		if err != nil {
			return nil, fmt.Errorf("product %q (%d): bad variant price %q: %w", p.Title, p.ID, v.Price, err)
		}
		if i == 0 || price.LessThan(priceMin) {
			priceMin = price
		}
		if i == 0 || price.GreaterThan(priceMax) {
			priceMax = price
		}
		if v.CompareAtPrice != nil && *v.CompareAtPrice != "" {
			cap, err := decimal.NewFromString(*v.CompareAtPrice)
			if err == nil && cap.IsPositive() && (compareAt == nil || cap.GreaterThan(*compareAt)) {
				compareAt = &cap
			}
		}
		if v.Available {
			isAvailable = true
		}
	}

	strippedDescription := StripHTML(p.BodyHTML)

	var category classifier.Result
	for _, resolve := range resolverChain(override) {
		if res := resolve(p, strippedDescription); res != nil {
			category = *res
			break
		}
	}

	out := &ScrapedProduct{
		ShopifyID:     p.ID,
		Title:         p.Title,
		Slug:          p.Handle,
		ProductType:   category.Category,
		CategoryGroup: category.CategoryGroup,
		Tags:          p.Tags,
		PriceMin:      priceMin.StringFixed(2),
		PriceMax:      priceMax.StringFixed(2),
		Currency:      currency,
		IsAvailable:   isAvailable,
		PublishedAt:   p.PublishedAt,
	}
	if p.BodyHTML != "" {
		body := p.BodyHTML
		out.Description = &body
	}
	if p.Vendor != "" {
		vendor := p.Vendor
		out.Vendor = &vendor
	}
	if compareAt != nil {
		s := compareAt.StringFixed(2)
		out.CompareAtPrice = &s
	}

	out.Variants = make([]ScrapedVariant, 0, len(p.Variants))
	for _, v := range p.Variants {
		sv := ScrapedVariant{
			ShopifyID:         v.ID,
			SKU:               v.SKU,
			Price:             v.Price,
			CompareAtPrice:    v.CompareAtPrice,
			InventoryQuantity: v.InventoryQuantity,
			Option1:           v.Option1,
			Option2:           v.Option2,
			Option3:           v.Option3,
			IsAvailable:       v.Available,
		}
		if v.Title != "" && v.Title != "Default Title" {
			title := v.Title
			sv.Title = &title
		}
		out.Variants = append(out.Variants, sv)
	}

	out.Images = make([]ScrapedImage, 0, len(p.Images))
	for _, img := range p.Images {
		out.Images = append(out.Images, ScrapedImage{
			ShopifyID: img.ID,
			Src:       img.Src,
			AltText:   img.Alt,
			Width:     img.Width,
			Height:    img.Height,
			Position:  img.Position,
		})
	}

	return out, nil
}

// ScrapeStore fetches a storefront's full catalog and transforms it. The
// collection category map is built first so overrides are ready when the
// products arrive. Per-product transform failures are returned alongside
// the successes; a products-feed failure fails the whole scrape.
func (c *Client) ScrapeStore(ctx context.Context, domain, currency string) ([]*ScrapedProduct, []string, error) {
	categoryMap := c.BuildCategoryMap(ctx, domain)

	raw, err := c.FetchProducts(ctx, domain)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("domain", domain).Int("products", len(raw)).Msg("storefront fetched")

	scraped := make([]*ScrapedProduct, 0, len(raw))
	var errs []string
	for i := range raw {
		p := &raw[i]
		var override *classifier.Result
		if res, ok := categoryMap[p.ID]; ok {
			override = &res
		}
		sp, err := Transform(p, currency, override)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Failed to process product %s: %v", p.Title, err))
			log.Warn().Str("domain", domain).Str("product", p.Title).Err(err).Msg("transform failed")
			continue
		}
		scraped = append(scraped, sp)
	}
	return scraped, errs, nil
}
