package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"indiemarket.GO/config"
	syncService "indiemarket.GO/service/sync"
)

var (
	syncBrandRef string
	syncCurrency string
)

var syncRunCmd = &cobra.Command{
	Use:   "sync:run",
	Short: "Sync one brand's Shopify catalog into the store",
	Run: func(cmd *cobra.Command, args []string) {
		runSync(syncBrandRef)
	},
}

var syncAllCmd = &cobra.Command{
	Use:   "sync:all",
	Short: "Sync every active brand sequentially",
	Run: func(cmd *cobra.Command, args []string) {
		runSync("")
	},
}

func runSync(brandRef string) {
	config.LoadAppConfig()
	config.InitRedis()

	db, err := config.NewDB()
	if err != nil {
		fmt.Printf("Database connection failed: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.SyncTimeout)
	defer cancel()

	svc := syncService.NewDefaultService(db)
	opts := syncService.Options{BrandID: brandRef, Currency: syncCurrency}

	start := time.Now()
	var results []syncService.Result
	if brandRef != "" {
		res, err := svc.SyncBrand(ctx, brandRef, opts)
		if err != nil {
			fmt.Printf("Sync failed: %v\n", err)
			os.Exit(1)
		}
		results = []syncService.Result{*res}
	} else {
		results, err = svc.SyncAll(ctx, opts)
		if err != nil {
			fmt.Printf("Sync failed: %v\n", err)
			os.Exit(1)
		}
	}

	found, created, updated, failed := 0, 0, 0, 0
	for _, r := range results {
		status := "ok"
		if len(r.Errors) > 0 {
			status = fmt.Sprintf("%d errors", len(r.Errors))
		}
		fmt.Printf("  %-30s found=%d created=%d updated=%d (%s)\n",
			r.BrandName, r.ProductsFound, r.ProductsCreated, r.ProductsUpdated, status)
		for _, e := range r.Errors {
			fmt.Printf("    [warn] %s\n", e)
		}
		found += r.ProductsFound
		created += r.ProductsCreated
		updated += r.ProductsUpdated
		failed += len(r.Errors)
	}

	fmt.Printf(`
=== Sync Report ===
Brands:      %d
Found:       %d
Created:     %d
Updated:     %d
Errors:      %d
Total time:  %s
===================
`, len(results), found, created, updated, failed, time.Since(start).Round(time.Millisecond))
}

func init() {
	syncRunCmd.Flags().StringVarP(&syncBrandRef, "brand", "b", "", "Brand id or slug (required)")
	syncRunCmd.MarkFlagRequired("brand")
	syncRunCmd.Flags().StringVar(&syncCurrency, "currency", "", "Currency code stamped on products (default from config)")
	syncAllCmd.Flags().StringVar(&syncCurrency, "currency", "", "Currency code stamped on products (default from config)")
	rootCmd.AddCommand(syncRunCmd)
	rootCmd.AddCommand(syncAllCmd)
}
