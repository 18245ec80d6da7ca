package shopify

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"indiemarket.GO/core/classifier"
)

// Collection titles containing one of these are treated as product
// categories rather than seasonal/monthly drops.
var categoryCollectionPatterns = []string{
	"accessories", "jacket", "denim", "pants", "knit", "crewneck",
	"hoodie", "sweatshirt", "t-shirt", "tee", "shorts", "bag",
	"jewelry", "hat", "cap", "footwear", "shoe", "sneaker",
}

// Special-cased collection names kept even though no category keyword hits.
var specialCollectionNames = []string{"lucky box", "more stuff"}

var (
	// Monthly/seasonal drops like "JANVIER", "AVRIL 2025", "ACTIF".
	monthPrefixRe = regexp.MustCompile(`^(janvier|fevrier|mars|avril|mai|juin|juillet|aout|septembre|octobre|novembre|decembre|actif)`)
	yearRe        = regexp.MustCompile(`20\d{2}`)
)

// IsLikelyCategoryCollection reports whether a collection title reads like a
// product category ("HOODIES") rather than a drop ("JANVIER 2025").
func IsLikelyCategoryCollection(title string) bool {
	titleLower := strings.ToLower(title)

	if monthPrefixRe.MatchString(titleLower) {
		return false
	}
	if yearRe.MatchString(title) && !containsAny(titleLower, categoryCollectionPatterns) {
		return false
	}
	return containsAny(titleLower, categoryCollectionPatterns) ||
		containsAny(titleLower, specialCollectionNames)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// BuildCategoryMap treats remote collections as category hints: for every
// product in an accepted collection, the collection title (uppercased)
// becomes its category, group fixed to Clothing. First collection wins;
// later ones cannot override. Advisory only — it seeds categorization for
// products new to the store and never overrides a stored category.
//
// All fetch failures here degrade to whatever was mapped so far; collection
// data is a hint, not a requirement.
func (c *Client) BuildCategoryMap(ctx context.Context, domain string) map[int64]classifier.Result {
	categories := make(map[int64]classifier.Result)

	collections, err := c.FetchCollections(ctx, domain)
	if err != nil {
		log.Warn().Str("domain", domain).Err(err).Msg("collections unavailable, skipping category map")
		return categories
	}

	for _, col := range collections {
		if !IsLikelyCategoryCollection(col.Title) {
			continue
		}
		products, err := c.FetchCollectionProducts(ctx, domain, col.Handle)
		if err != nil {
			log.Warn().Str("domain", domain).Str("collection", col.Handle).Err(err).
				Msg("collection products unavailable, skipping")
			continue
		}
		for _, p := range products {
			if _, ok := categories[p.ID]; ok {
				continue
			}
			categories[p.ID] = classifier.Result{
				Category:      strings.ToUpper(col.Title),
				CategoryGroup: classifier.GroupClothing,
				Confidence:    classifier.ConfidenceHigh,
			}
		}
	}

	log.Info().Str("domain", domain).Int("mapped", len(categories)).
		Msg("category map built from collections")
	return categories
}
