package sync

import (
	"gorm.io/gorm"

	"indiemarket.GO/config"
	"indiemarket.GO/service/search"
	"indiemarket.GO/service/shopify"
)

// NewDefaultService wires a Service from global configuration: storefront
// client paced per AppConfig, Redis-backed brand lock (nil Redis degrades
// to unguarded), and the Elasticsearch indexer.
func NewDefaultService(db *gorm.DB) *Service {
	config.LoadAppConfig()

	clientCfg := shopify.DefaultClientConfig()
	clientCfg.UserAgent = config.AppConfig.ScraperUserAgent
	clientCfg.RequestDelay = config.AppConfig.RequestDelay
	clientCfg.RequestTimeout = config.AppConfig.RequestTimeout

	client := shopify.NewClient(clientCfg)
	locker := NewBrandLocker(config.RedisClient, 0)

	return NewService(db, client, locker, search.GetSearchService())
}
