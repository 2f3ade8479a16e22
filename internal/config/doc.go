// Package config loads application configuration from environment variables.
//
// Configuration covers the Discord connection and the five durations driving
// the party lifecycle: the warning and expiry thresholds, the thread
// retention window, and the two sweep intervals.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    // handle
//	}
//	if err := cfg.Validate(); err != nil {
//	    // handle
//	}
//
// All values have development-friendly defaults except the Discord
// credentials, which Validate reports as missing.
package config
