// Package service implements the business logic layer for the party bot.
//
// The service package contains the party lifecycle state machine: the draft
// cache, the party registry, and the two time-driven sweeps (lifecycle and
// deferred cleanup). Services are the primary abstraction between interaction
// handlers and storage.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with
//     repository and transport dependencies
//   - Methods implement business operations with proper validation
//   - Context is passed through for cancellation
//   - The clock is injectable for deterministic sweep tests
//
// # State Before Side Effects
//
// The in-memory registry is the source of truth. Every operation commits its
// registry transition before issuing transport calls, and transport failures
// never roll a transition back; a failed cosmetic side effect must not
// desynchronize the registry.
//
// # Error Handling
//
// Services return domain-specific errors defined in errors.go:
//
//	var (
//	    ErrPartyNotFound  = errors.New("party not found")
//	    ErrAlreadyLeading = errors.New("user already leads a live party")
//	)
//
// Entity-already-gone conditions are benign: handlers and sweeps treat them
// as already handled, not as failures.
package service
