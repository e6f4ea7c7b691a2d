// Package jobs runs the label service's housekeeping on a cron schedule
// (github.com/robfig/cron/v3, seconds field enabled).
//
// LabelRetentionJob removes archived print jobs once they outlive the configured
// retention. By default it fires every night at 03:00:00.
//
// JobManager owns the scheduled jobs:
//
//	manager, err := jobs.NewJobManager(purgeHandler, "", 30*24*time.Hour, logger)
//	if err != nil {
//		return err
//	}
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// A failed purge is only logged; the next run picks up whatever is left.
package jobs
