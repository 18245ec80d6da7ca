package sync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"indiemarket.GO/core/classifier"
	productEntity "indiemarket.GO/model/entity/product"
	"indiemarket.GO/service/shopify"
)

// RecategorizeOptions configures the maintenance operation. Zero value:
// every product of every brand, skipping anything already categorized.
type RecategorizeOptions struct {
	// BrandID restricts the batch to one brand (id or slug); empty = all.
	BrandID string
	// Force reclassifies even products that already carry a non-empty
	// productType. This is the only sanctioned way to overwrite a stored
	// category.
	Force bool
}

// RecategorizeResult summarizes one maintenance batch.
type RecategorizeResult struct {
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// Recategorize reclassifies stored products through the title/description
// classifier. Operator-triggered only — routine syncs never touch a stored
// category. Per-product failures accumulate; the batch always runs to the
// end.
func (s *Service) Recategorize(ctx context.Context, opts RecategorizeOptions) (*RecategorizeResult, error) {
	var products []productEntity.Product
	var err error

	if opts.BrandID != "" {
		brand, berr := s.brands.FindByIDOrSlug(opts.BrandID)
		if berr != nil {
			return nil, fmt.Errorf("brand not found: %s", opts.BrandID)
		}
		products, err = s.products.FindByBrand(brand.ID)
	} else {
		products, err = s.products.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	log.Info().Int("products", len(products)).Bool("force", opts.Force).Msg("recategorize started")

	result := &RecategorizeResult{}
	for i := range products {
		p := &products[i]
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !opts.Force && p.ProductType != "" {
			result.Skipped++
			continue
		}

		description := ""
		if p.Description != nil {
			description = shopify.StripHTML(*p.Description)
		}
		res := classifier.Classify(p.Title, description)
		if err := s.products.UpdateProductType(p.ID, res.Category, res.CategoryGroup); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to categorize %s: %v", p.Title, err))
			continue
		}
		result.Updated++
	}

	log.Info().Int("updated", result.Updated).Int("skipped", result.Skipped).
		Int("errors", len(result.Errors)).Msg("recategorize finished")
	return result, nil
}
