// Package repository implements the data access layer for the party bot.
//
// All state is process-lifetime in-memory storage; losing it on restart is an
// accepted property of the system. Each repository struct owns one map guarded
// by a sync.RWMutex.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) returns an empty store
//   - Methods implement specific data operations (Put, Get, Remove, List, etc.)
//   - Entities are copied on the way in and out, so callers never share
//     mutable state with the store or with each other
//   - List returns a snapshot, so sweeps can iterate while handlers mutate
//
// # Service Interfaces
//
// Services define their own narrow interfaces over these repositories,
// allowing easy mocking for unit tests and alternative backends.
package repository
