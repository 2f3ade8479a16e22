// Package jobs implements background job processing for the party bot.
//
// The jobs package contains the two time-driven sweeps that run
// independently of interaction handling.
//
// # Job Types
//
//   - LifecycleSweeper: ages live parties into warned/expired states
//   - CleanupSweeper: reaps threads whose retention window has passed
//
// # Job Shape
//
// Both jobs follow the same pattern:
//
//	sweeper := jobs.NewLifecycleSweeper(lifecycleService, 30*time.Second)
//	sweeper.Start()
//	defer sweeper.Stop()
//
// Start and Stop are idempotent. RunOnce triggers a single pass for tests or
// manual intervention.
//
// # Error Handling
//
// Sweeps log errors but never crash the process. The two timers run on
// independent intervals and may interleave with each other and with
// interaction handlers; services tolerate entities disappearing mid-sweep.
package jobs
