package repository

import (
	"context"
	"sync"

	"github.com/forgo/party/internal/model"
)

// DraftRepository stores at most one configuration draft per user
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]*model.Draft
}

// NewDraftRepository creates an empty draft repository
func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]*model.Draft)}
}

// Put inserts or replaces the owner's draft
func (r *DraftRepository) Put(ctx context.Context, draft *model.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.OwnerID] = copyDraft(draft)
	return nil
}

// Get retrieves the owner's draft, or nil if none exists
func (r *DraftRepository) Get(ctx context.Context, ownerID string) (*model.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	draft, ok := r.drafts[ownerID]
	if !ok {
		return nil, nil
	}
	return copyDraft(draft), nil
}

// Consume atomically reads and deletes the owner's draft, or returns nil.
// Used by publish so a draft cannot be double-published.
func (r *DraftRepository) Consume(ctx context.Context, ownerID string) (*model.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	draft, ok := r.drafts[ownerID]
	if !ok {
		return nil, nil
	}
	delete(r.drafts, ownerID)
	return copyDraft(draft), nil
}

// Delete removes the owner's draft if present
func (r *DraftRepository) Delete(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, ownerID)
	return nil
}

func copyDraft(d *model.Draft) *model.Draft {
	out := *d
	out.Ranks = append([]model.Rank(nil), d.Ranks...)
	return &out
}
