package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"indiemarket.GO/config"
	"indiemarket.GO/cron"
	_ "indiemarket.GO/cron/jobs"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		config.InitRedis()

		if jobName != "" {
			name := strings.ToLower(jobName)
			fmt.Printf("Running cron job: %s\n", name)
			if err := cron.RunJob(name, args...); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			return
		}
		fmt.Println("Starting cron scheduler...")
		c := cron.StartCron()
		defer c.Stop()
		fmt.Println("Cron scheduler started. Press Ctrl+C to exit.")
		select {} // Block forever
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
