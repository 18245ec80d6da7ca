package jobs

import (
	"context"

	"github.com/rs/zerolog/log"

	"indiemarket.GO/config"
	"indiemarket.GO/cron"
	syncService "indiemarket.GO/service/sync"
)

func init() {
	cron.Register("sync:all", "0 */6 * * *", runSyncAll)
}

// runSyncAll refreshes every active brand's catalog. Capped at the
// configured sync ceiling so an unresponsive storefront cannot stack runs.
func runSyncAll(args ...string) {
	config.LoadAppConfig()

	db, err := config.NewDB()
	if err != nil {
		log.Error().Err(err).Msg("scheduled sync skipped, database unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.SyncTimeout)
	defer cancel()

	opts := syncService.Options{Currency: config.AppConfig.Currency}
	if len(args) > 0 && args[0] != "" {
		opts.BrandID = args[0]
	}

	svc := syncService.NewDefaultService(db)
	var results []syncService.Result
	if opts.BrandID != "" {
		res, err := svc.SyncBrand(ctx, opts.BrandID, opts)
		if err != nil {
			log.Error().Err(err).Str("brand", opts.BrandID).Msg("scheduled sync failed")
			return
		}
		results = []syncService.Result{*res}
	} else {
		results, err = svc.SyncAll(ctx, opts)
		if err != nil {
			log.Error().Err(err).Msg("scheduled sync failed")
			return
		}
	}

	created, updated, errs := 0, 0, 0
	for _, r := range results {
		created += r.ProductsCreated
		updated += r.ProductsUpdated
		errs += len(r.Errors)
	}
	log.Info().Int("brands", len(results)).Int("created", created).
		Int("updated", updated).Int("errors", errs).Msg("scheduled sync finished")
}
