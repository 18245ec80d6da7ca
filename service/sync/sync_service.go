package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	entity "indiemarket.GO/model/entity"
	productEntity "indiemarket.GO/model/entity/product"
	brandRepo "indiemarket.GO/model/repository/brand"
	productRepo "indiemarket.GO/model/repository/product"
	synclogRepo "indiemarket.GO/model/repository/synclog"
	"indiemarket.GO/service/shopify"
)

// Options configures a sync run. The zero value means "all active brands,
// EUR, default client pacing".
type Options struct {
	// BrandID restricts the run to one brand (id or slug); empty = all
	// active brands.
	BrandID string
	// Currency stamped onto canonical products. Default "EUR".
	Currency string
}

// Result holds the per-brand outcome reported to every trigger.
type Result struct {
	BrandID         string   `json:"brandId"`
	BrandName       string   `json:"brandName"`
	ProductsFound   int      `json:"productsFound"`
	ProductsCreated int      `json:"productsCreated"`
	ProductsUpdated int      `json:"productsUpdated"`
	Errors          []string `json:"errors"`
}

// Indexer receives a brand's products after a successful sync. Failures are
// the indexer's to log; the sync never depends on it.
type Indexer interface {
	IndexBrandProducts(ctx context.Context, brand *entity.Brand, products []productEntity.Product)
}

// Service drives brand catalog synchronization.
type Service struct {
	client   *shopify.Client
	brands   *brandRepo.BrandRepository
	products *productRepo.ProductRepository
	logs     *synclogRepo.SyncLogRepository
	locker   *BrandLocker
	indexer  Indexer
}

func NewService(db *gorm.DB, client *shopify.Client, locker *BrandLocker, indexer Indexer) *Service {
	return &Service{
		client:   client,
		brands:   brandRepo.GetBrandRepository(db),
		products: productRepo.GetProductRepository(db),
		logs:     synclogRepo.GetSyncLogRepository(db),
		locker:   locker,
		indexer:  indexer,
	}
}

// SyncBrand runs one brand's full sync pipeline: audit log, isNew reset,
// scrape, per-product reconcile, terminal log update, lastSyncedAt. A hard
// failure (brand missing, product feed down) marks the log failed and is
// returned to the caller; per-product failures are accumulated and never
// abort the loop.
func (s *Service) SyncBrand(ctx context.Context, brandRef string, opts Options) (*Result, error) {
	currency := opts.Currency
	if currency == "" {
		currency = "EUR"
	}

	brand, err := s.brands.FindByIDOrSlug(brandRef)
	if err != nil {
		return nil, fmt.Errorf("brand not found: %s", brandRef)
	}

	release, err := s.locker.Acquire(ctx, brand.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	log.Info().Str("brand", brand.Name).Str("domain", brand.ShopifyDomain).Msg("sync started")

	syncLog, err := s.logs.Start(brand.ID)
	if err != nil {
		return nil, fmt.Errorf("create sync log: %w", err)
	}

	result, err := s.runBrandSync(ctx, brand, syncLog, currency)
	if err != nil {
		// Hard failure: terminal log update, lastSyncedAt untouched.
		if logErr := s.logs.Fail(syncLog.ID, err.Error()); logErr != nil {
			log.Error().Str("brand", brand.Name).Err(logErr).Msg("failed to finalize sync log")
		}
		return nil, err
	}
	return result, nil
}

func (s *Service) runBrandSync(ctx context.Context, brand *entity.Brand, syncLog *entity.SyncLog, currency string) (*Result, error) {
	result := &Result{BrandID: brand.ID, BrandName: brand.Name}

	// Reset-before-fetch: after this run only rows created by it carry
	// is_new. Must complete before any network I/O.
	if err := s.products.ResetIsNew(brand.ID); err != nil {
		return nil, fmt.Errorf("reset is_new: %w", err)
	}

	scraped, scrapeErrs, err := s.client.ScrapeStore(ctx, brand.ShopifyDomain, currency)
	if err != nil {
		return nil, err
	}
	result.ProductsFound = len(scraped) + len(scrapeErrs)
	result.Errors = append(result.Errors, scrapeErrs...)

	for _, sp := range scraped {
		created, err := s.upsertProduct(brand.ID, sp)
		if err != nil {
			msg := fmt.Sprintf("Failed to process product %s: %v", sp.Title, err)
			result.Errors = append(result.Errors, msg)
			log.Warn().Str("brand", brand.Name).Str("product", sp.Title).Err(err).Msg("upsert failed")
			continue
		}
		if created {
			result.ProductsCreated++
		} else {
			result.ProductsUpdated++
		}
	}

	status := entity.SyncStatusCompleted
	if len(result.Errors) > 0 {
		status = entity.SyncStatusCompletedWithErrors
	}
	if err := s.logs.Finish(syncLog.ID, status,
		result.ProductsFound, result.ProductsCreated, result.ProductsUpdated,
		strings.Join(result.Errors, "\n")); err != nil {
		return nil, fmt.Errorf("finalize sync log: %w", err)
	}

	if err := s.brands.TouchLastSynced(brand.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("update last_synced_at: %w", err)
	}

	if s.indexer != nil {
		if products, err := s.products.FindByBrand(brand.ID); err == nil {
			s.indexer.IndexBrandProducts(ctx, brand, products)
		}
	}

	log.Info().Str("brand", brand.Name).
		Int("found", result.ProductsFound).
		Int("created", result.ProductsCreated).
		Int("updated", result.ProductsUpdated).
		Int("errors", len(result.Errors)).
		Msg("sync finished")
	return result, nil
}

// upsertProduct is the storage reconciler. Identity is (brandID, shopifyID).
// New products insert with isNew=true and the transformer's resolved
// category. Existing products change ONLY isAvailable and updatedAt —
// title, description, prices and productType are sticky once stored.
// Variants and images are replaced wholesale either way.
func (s *Service) upsertProduct(brandID string, sp *shopify.ScrapedProduct) (created bool, err error) {
	existing, err := s.products.FindByBrandAndShopifyID(brandID, sp.ShopifyID)
	if err != nil {
		return false, err
	}

	variants := toVariantEntities(sp.Variants)
	images := toImageEntities(sp.Images)

	if existing != nil {
		if err := s.products.UpdateAvailability(existing.ID, sp.IsAvailable, variants, images); err != nil {
			return false, err
		}
		return false, nil
	}

	p := &productEntity.Product{
		BrandID:        brandID,
		ShopifyID:      sp.ShopifyID,
		Title:          sp.Title,
		Slug:           sp.Slug,
		Description:    sp.Description,
		ProductType:    sp.ProductType,
		CategoryGroup:  sp.CategoryGroup,
		Vendor:         sp.Vendor,
		Tags:           sp.Tags,
		PriceMin:       sp.PriceMin,
		PriceMax:       sp.PriceMax,
		Currency:       sp.Currency,
		CompareAtPrice: sp.CompareAtPrice,
		IsAvailable:    sp.IsAvailable,
		IsNew:          true,
		PublishedAt:    sp.PublishedAt,
	}
	if err := s.products.Insert(p, variants, images); err != nil {
		return false, err
	}
	return true, nil
}

// SyncAll syncs every active brand sequentially — remote storefronts are
// rate-limited and sequential execution bounds database contention. One
// brand's failure becomes that brand's result entry; the loop continues.
func (s *Service) SyncAll(ctx context.Context, opts Options) ([]Result, error) {
	brands, err := s.brands.FindActive()
	if err != nil {
		return nil, fmt.Errorf("load active brands: %w", err)
	}
	log.Info().Int("brands", len(brands)).Msg("sync-all started")

	results := make([]Result, 0, len(brands))
	for _, b := range brands {
		res, err := s.SyncBrand(ctx, b.ID, opts)
		if err != nil {
			log.Error().Str("brand", b.Name).Err(err).Msg("brand sync failed")
			results = append(results, Result{
				BrandID:   b.ID,
				BrandName: b.Name,
				Errors:    []string{err.Error()},
			})
			continue
		}
		results = append(results, *res)
	}
	return results, nil
}

func toVariantEntities(in []shopify.ScrapedVariant) []productEntity.ProductVariant {
	out := make([]productEntity.ProductVariant, 0, len(in))
	for _, v := range in {
		out = append(out, productEntity.ProductVariant{
			ShopifyID:         v.ShopifyID,
			Title:             v.Title,
			SKU:               v.SKU,
			Price:             v.Price,
			CompareAtPrice:    v.CompareAtPrice,
			InventoryQuantity: v.InventoryQuantity,
			Option1:           v.Option1,
			Option2:           v.Option2,
			Option3:           v.Option3,
			IsAvailable:       v.IsAvailable,
		})
	}
	return out
}

func toImageEntities(in []shopify.ScrapedImage) []productEntity.ProductImage {
	out := make([]productEntity.ProductImage, 0, len(in))
	for _, img := range in {
		out = append(out, productEntity.ProductImage{
			ShopifyID: img.ShopifyID,
			Src:       img.Src,
			AltText:   img.AltText,
			Width:     img.Width,
			Height:    img.Height,
			Position:  img.Position,
		})
	}
	return out
}
