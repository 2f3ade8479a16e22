package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/party/internal/model"
)

// PartyRepository defines the interface for live party storage
type PartyRepository interface {
	Put(ctx context.Context, party *model.Party) error
	Get(ctx context.Context, partyID string) (*model.Party, error)
	Remove(ctx context.Context, partyID string) (*model.Party, error)
	List(ctx context.Context) ([]*model.Party, error)
	HasLeader(ctx context.Context, userID string) (bool, error)
}

// PartyService handles the registry of currently-live parties
type PartyService struct {
	partyRepo PartyRepository
	now       func() time.Time

	// mu serializes read-modify-write sequences over the registry so that
	// concurrent interaction handlers cannot interleave between the check
	// and the commit.
	mu sync.Mutex
}

// PartyServiceConfig holds configuration for the party service
type PartyServiceConfig struct {
	PartyRepo PartyRepository
	Now       func() time.Time // Optional, defaults to time.Now
}

// NewPartyService creates a new party service
func NewPartyService(cfg PartyServiceConfig) *PartyService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &PartyService{
		partyRepo: cfg.PartyRepo,
		now:       now,
	}
}

// HasActiveLeader reports whether the user currently leads a live party
func (s *PartyService) HasActiveLeader(ctx context.Context, userID string) (bool, error) {
	return s.partyRepo.HasLeader(ctx, userID)
}

// Publish inserts a new live party built from a consumed draft and the
// transport references the caller already created. The id is a random token;
// it deliberately leaks neither creation order nor volume.
func (s *PartyService) Publish(ctx context.Context, draft *model.Draft, threadID, messageID, channelID string) (*model.Party, error) {
	party := &model.Party{
		ID:        uuid.NewString(),
		Mode:      draft.Mode,
		LeaderID:  draft.OwnerID,
		CreatedAt: s.now(),
		ThreadID:  threadID,
		MessageID: messageID,
		ChannelID: channelID,
	}
	if err := s.partyRepo.Put(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

// Get returns a live party, or ErrPartyNotFound
func (s *PartyService) Get(ctx context.Context, partyID string) (*model.Party, error) {
	party, err := s.partyRepo.Get(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, ErrPartyNotFound
	}
	return party, nil
}

// Join appends a user to a party's member set. The registry commit happens
// here; granting thread access and posting a join notice are the caller's
// follow-up side effects.
func (s *PartyService) Join(ctx context.Context, partyID, userID string) (*model.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	party, err := s.partyRepo.Get(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, ErrPartyNotFound
	}
	if party.LeaderID == userID {
		return nil, ErrSelfJoin
	}
	if party.HasMember(userID) {
		return nil, ErrAlreadyMember
	}

	party.MemberIDs = append(party.MemberIDs, userID)
	if err := s.partyRepo.Put(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

// Extend resets the party's age and clears its warned state. Only the leader
// may extend; callers ignore ErrPartyNotFound and ErrNotPartyLeader silently.
// The stale warning message id is returned so the caller can delete it.
func (s *PartyService) Extend(ctx context.Context, partyID, userID string) (party *model.Party, staleWarnMessageID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	party, err = s.partyRepo.Get(ctx, partyID)
	if err != nil {
		return nil, "", err
	}
	if party == nil {
		return nil, "", ErrPartyNotFound
	}
	if party.LeaderID != userID {
		return nil, "", ErrNotPartyLeader
	}

	stale := party.WarnMessageID
	party.CreatedAt = s.now()
	party.Warned = false
	party.WarnMessageID = ""
	if err := s.partyRepo.Put(ctx, party); err != nil {
		return nil, "", err
	}
	return party, stale, nil
}

// Stop removes a party from the registry and returns it so the caller can
// retire its thread and announcement. Only the leader may stop; callers
// ignore ErrPartyNotFound and ErrNotPartyLeader silently.
func (s *PartyService) Stop(ctx context.Context, partyID, userID string) (*model.Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	party, err := s.partyRepo.Get(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, ErrPartyNotFound
	}
	if party.LeaderID != userID {
		return nil, ErrNotPartyLeader
	}

	removed, err := s.partyRepo.Remove(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, ErrPartyNotFound
	}
	return removed, nil
}
