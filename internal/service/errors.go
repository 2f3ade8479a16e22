package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in interaction handlers predictable.

// ===== Draft Errors =====
var (
	ErrNoDraft              = errors.New("no draft in progress")
	ErrInvalidMode          = errors.New("unknown game mode")
	ErrInvalidPlayerCount   = errors.New("player count must be 1-9 or any")
	ErrInvalidRankSelection = errors.New("rank selection must be 1-5 known ranks")
)

// ===== Party Errors =====
var (
	ErrPartyNotFound  = errors.New("party not found")
	ErrAlreadyLeading = errors.New("user already leads a live party")
	ErrNotPartyLeader = errors.New("not the party leader")
	ErrSelfJoin       = errors.New("cannot join own party")
	ErrAlreadyMember  = errors.New("already joined this party")
)
