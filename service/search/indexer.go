package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"

	"indiemarket.GO/model/entity"
	productEntity "indiemarket.GO/model/entity/product"
)

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

// SearchService mirrors catalog products into Elasticsearch after a sync.
// When ELASTICSEARCH_HOST is unreachable or unset the service degrades to a
// no-op: indexing is best-effort and the catalog store stays authoritative.
type SearchService struct {
	client *elasticsearch.Client
	prefix string
}

func NewSearchService() *SearchService {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		host = "http://localhost:9200"
	}
	prefix := os.Getenv("ELASTICSEARCH_INDEX_PREFIX")
	if prefix == "" {
		prefix = "indiemarket"
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("elasticsearch client unavailable, indexing disabled")
		return &SearchService{prefix: prefix}
	}

	return &SearchService{
		client: client,
		prefix: prefix,
	}
}

func (s *SearchService) indexName() string {
	return s.prefix + "_catalog_product"
}

type productDocument struct {
	ID            string   `json:"id"`
	BrandID       string   `json:"brand_id"`
	BrandName     string   `json:"brand_name"`
	ShopifyID     int64    `json:"shopify_id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description,omitempty"`
	ProductType   string   `json:"product_type"`
	CategoryGroup string   `json:"category_group"`
	Tags          []string `json:"tags,omitempty"`
	PriceMin      string   `json:"price_min"`
	PriceMax      string   `json:"price_max"`
	Currency      string   `json:"currency"`
	IsNew         bool     `json:"is_new"`
	IsAvailable   bool     `json:"is_available"`
}

// IndexBrandProducts bulk-upserts every product of a brand into the catalog
// index. Errors are logged and swallowed: a sync must never fail because the
// search cluster is down.
func (s *SearchService) IndexBrandProducts(ctx context.Context, brand *entity.Brand, products []productEntity.Product) {
	if s.client == nil || len(products) == 0 {
		return
	}

	var buf bytes.Buffer
	for i := range products {
		p := &products[i]
		meta := map[string]map[string]string{
			"index": {"_index": s.indexName(), "_id": p.ID},
		}
		doc := productDocument{
			ID:            p.ID,
			BrandID:       p.BrandID,
			BrandName:     brand.Name,
			ShopifyID:     p.ShopifyID,
			Title:         p.Title,
			Slug:          p.Slug,
			ProductType:   p.ProductType,
			CategoryGroup: p.CategoryGroup,
			Tags:          p.Tags,
			PriceMin:      p.PriceMin,
			PriceMax:      p.PriceMax,
			Currency:      p.Currency,
			IsNew:         p.IsNew,
			IsAvailable:   p.IsAvailable,
		}
		if p.Description != nil {
			doc.Description = *p.Description
		}

		metaBytes, _ := json.Marshal(meta)
		docBytes, err := json.Marshal(doc)
		if err != nil {
			log.Warn().Err(err).Str("product", p.ID).Msg("skip unmarshalable product document")
			continue
		}
		buf.Write(metaBytes)
		buf.WriteByte('\n')
		buf.Write(docBytes)
		buf.WriteByte('\n')
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
		s.client.Bulk.WithIndex(s.indexName()),
	)
	if err != nil {
		log.Warn().Err(err).Str("brand", brand.ID).Msg("bulk index failed")
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Warn().Str("brand", brand.ID).Str("status", res.Status()).Msg("bulk index rejected")
		return
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int    `json:"status"`
			Error  any    `json:"error"`
			ID     string `json:"_id"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResp); err != nil {
		log.Warn().Err(err).Msg("bulk index response decode failed")
		return
	}
	if bulkResp.Errors {
		failed := 0
		for _, item := range bulkResp.Items {
			for _, op := range item {
				if op.Status >= 300 {
					failed++
				}
			}
		}
		log.Warn().Str("brand", brand.ID).Int("failed", failed).Msg("bulk index partial failure")
		return
	}

	log.Debug().Str("brand", brand.ID).Int("products", len(products)).Msg("brand products indexed")
}

// SearchResult is one page of catalog search hits.
type SearchResult struct {
	Products   []productDocument `json:"products"`
	TotalCount int               `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// Search queries the catalog product index.
func (s *SearchService) Search(ctx context.Context, query string, page, pageSize int, categoryGroup string) (*SearchResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}

	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}
	from := (page - 1) * pageSize

	body := map[string]interface{}{
		"from": from,
		"size": pageSize,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":  query,
							"fields": []string{"title^3", "brand_name^2", "tags", "description"},
						},
					},
				},
			},
		},
	}
	if categoryGroup != "" {
		body["query"].(map[string]interface{})["bool"].(map[string]interface{})["filter"] = []map[string]interface{}{
			{"term": map[string]interface{}{"category_group": strings.TrimSpace(categoryGroup)}},
		}
	}

	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.indexName()),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source productDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	products := make([]productDocument, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		products = append(products, hit.Source)
	}

	total := esResp.Hits.Total.Value
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &SearchResult{
		Products:   products,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
