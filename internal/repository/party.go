package repository

import (
	"context"
	"sync"

	"github.com/forgo/party/internal/model"
)

// PartyRepository stores the currently-live parties, keyed by party id
type PartyRepository struct {
	mu      sync.RWMutex
	parties map[string]*model.Party
}

// NewPartyRepository creates an empty party repository
func NewPartyRepository() *PartyRepository {
	return &PartyRepository{parties: make(map[string]*model.Party)}
}

// Put inserts or replaces a party
func (r *PartyRepository) Put(ctx context.Context, party *model.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parties[party.ID] = copyParty(party)
	return nil
}

// Get retrieves a party by id, or nil if no such live party exists
func (r *PartyRepository) Get(ctx context.Context, partyID string) (*model.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	party, ok := r.parties[partyID]
	if !ok {
		return nil, nil
	}
	return copyParty(party), nil
}

// Remove deletes a party and returns it, or nil if it was already gone
func (r *PartyRepository) Remove(ctx context.Context, partyID string) (*model.Party, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	party, ok := r.parties[partyID]
	if !ok {
		return nil, nil
	}
	delete(r.parties, partyID)
	return copyParty(party), nil
}

// List returns a snapshot of all live parties
func (r *PartyRepository) List(ctx context.Context) ([]*model.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Party, 0, len(r.parties))
	for _, party := range r.parties {
		out = append(out, copyParty(party))
	}
	return out, nil
}

// HasLeader reports whether any live party is led by the user
func (r *PartyRepository) HasLeader(ctx context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, party := range r.parties {
		if party.LeaderID == userID {
			return true, nil
		}
	}
	return false, nil
}

func copyParty(p *model.Party) *model.Party {
	out := *p
	out.MemberIDs = append([]string(nil), p.MemberIDs...)
	return &out
}
