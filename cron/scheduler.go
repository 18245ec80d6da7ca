package cron

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"indiemarket.GO/config"
)

// StartCron schedules every configured and registered job and starts the
// scheduler.
func StartCron() *cron.Cron {
	c := cron.New()
	for name, cronJob := range config.CronJobs {
		jobFunc := cronJob.Job
		_, err := c.AddFunc(cronJob.Schedule, func() { jobFunc() })
		if err != nil {
			log.Fatal().Str("job", name).Err(err).Msg("failed to register cron job")
		}
	}
	for name, j := range Jobs() {
		run := j.Run
		sched := j.Schedule
		_, err := c.AddFunc(sched, func() { run() })
		if err != nil {
			log.Fatal().Str("job", name).Err(err).Msg("failed to register cron job")
		}
	}
	c.Start()
	return c
}

// RunJob executes a single registered job once, immediately.
func RunJob(name string, args ...string) error {
	if cronJob, ok := config.CronJobs[name]; ok {
		cronJob.Job(args...)
		return nil
	}
	if j, ok := Jobs()[name]; ok {
		j.Run(args...)
		return nil
	}
	return fmt.Errorf("unknown cron job: %s", name)
}
