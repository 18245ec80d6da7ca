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
	recatBrandRef string
	recatForce    bool
)

var recategorizeCmd = &cobra.Command{
	Use:   "products:recategorize",
	Short: "Reclassify stored products through the keyword classifier",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		start := time.Now()
		svc := syncService.NewDefaultService(db)
		res, err := svc.Recategorize(context.Background(), syncService.RecategorizeOptions{
			BrandID: recatBrandRef,
			Force:   recatForce,
		})
		if err != nil {
			fmt.Printf("Recategorize failed: %v\n", err)
			os.Exit(1)
		}

		for _, e := range res.Errors {
			fmt.Printf("  [warn] %s\n", e)
		}
		fmt.Printf(`
=== Recategorize Report ===
Updated:     %d
Skipped:     %d
Errors:      %d
Total time:  %s
===========================
`, res.Updated, res.Skipped, len(res.Errors), time.Since(start).Round(time.Millisecond))
	},
}

func init() {
	recategorizeCmd.Flags().StringVarP(&recatBrandRef, "brand", "b", "", "Brand id or slug (default: all brands)")
	recategorizeCmd.Flags().BoolVar(&recatForce, "force", false, "Reclassify even products that already have a category")
	rootCmd.AddCommand(recategorizeCmd)
}
