package config

// CronJob pairs a cron schedule with a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. Runtime jobs (the brand sync)
// register themselves through cron.Register from their package init, so the
// scheduler merges both sources.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
