// Package model defines domain entities and data structures for the party bot.
//
// The model package contains all struct definitions for domain objects and
// their validation rules. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Party: a published, time-bounded request for additional players
//   - Draft: a user's in-progress, unpublished party configuration
//   - PendingDeletion: a retention-delayed thread destruction record
//
// # Closed Sets
//
// Game modes and rank labels are closed sets defined as typed constants:
//
//	const (
//	    ModeRanked Mode = "Ranked"
//	    ModeNormal Mode = "Normal"
//	)
//
// # Tagged Variants
//
// Optional or sentinel-valued fields are modeled as explicit variants rather
// than magic strings. PlayerCount is either "any amount" or an exact count:
//
//	count := model.ExactCount(3)
//	count.Any // false
//	count.N   // 3
package model
