package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"indiemarket.GO/config"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply pending schema migrations (or roll back one with --down)",
	Run: func(cmd *cobra.Command, args []string) {
		if migrateDown {
			if err := config.MigrateDown(); err != nil {
				fmt.Printf("Migration rollback failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Rolled back one migration.")
			return
		}
		if err := config.MigrateUp(); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Migrations applied.")
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")
	rootCmd.AddCommand(migrateCmd)
}
