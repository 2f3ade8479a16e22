package repository

import (
	"context"
	"sync"

	"github.com/forgo/party/internal/model"
)

// CleanupRepository stores pending thread deletions, keyed by thread id.
// Re-adding an existing thread overwrites its deletion time.
type CleanupRepository struct {
	mu      sync.RWMutex
	pending map[string]*model.PendingDeletion
}

// NewCleanupRepository creates an empty cleanup repository
func NewCleanupRepository() *CleanupRepository {
	return &CleanupRepository{pending: make(map[string]*model.PendingDeletion)}
}

// Put inserts or replaces a pending deletion (last write wins)
func (r *CleanupRepository) Put(ctx context.Context, deletion *model.PendingDeletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := *deletion
	r.pending[deletion.ThreadID] = &d
	return nil
}

// Get retrieves a pending deletion by thread id, or nil if none exists
func (r *CleanupRepository) Get(ctx context.Context, threadID string) (*model.PendingDeletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	deletion, ok := r.pending[threadID]
	if !ok {
		return nil, nil
	}
	d := *deletion
	return &d, nil
}

// List returns a snapshot of all pending deletions
func (r *CleanupRepository) List(ctx context.Context) ([]*model.PendingDeletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.PendingDeletion, 0, len(r.pending))
	for _, deletion := range r.pending {
		d := *deletion
		out = append(out, &d)
	}
	return out, nil
}

// Delete removes a pending deletion if present
func (r *CleanupRepository) Delete(ctx context.Context, threadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, threadID)
	return nil
}
