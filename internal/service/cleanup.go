package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/forgo/party/internal/model"
)

// CleanupRepository defines the interface for pending deletion storage
type CleanupRepository interface {
	Put(ctx context.Context, deletion *model.PendingDeletion) error
	List(ctx context.Context) ([]*model.PendingDeletion, error)
	Delete(ctx context.Context, threadID string) error
}

// CleanupService reaps threads belonging to ended parties once their
// retention window passes
type CleanupService struct {
	repo      CleanupRepository
	messenger Messenger
	retention time.Duration
	now       func() time.Time
}

// CleanupServiceConfig holds configuration for the cleanup service
type CleanupServiceConfig struct {
	Repo      CleanupRepository
	Messenger Messenger
	Retention time.Duration
	Now       func() time.Time // Optional, defaults to time.Now
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(cfg CleanupServiceConfig) *CleanupService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &CleanupService{
		repo:      cfg.Repo,
		messenger: cfg.Messenger,
		retention: cfg.Retention,
		now:       now,
	}
}

// Enqueue schedules a thread for deletion after the retention window.
// Enqueueing the same thread again pushes its deletion time out.
func (s *CleanupService) Enqueue(ctx context.Context, threadID, channelID string) error {
	return s.repo.Put(ctx, &model.PendingDeletion{
		ThreadID:  threadID,
		ChannelID: channelID,
		DeleteAt:  s.now().Add(s.retention),
	})
}

// Sweep deletes every due thread. Each entry gets exactly one attempt and is
// removed from the queue whether or not the attempt succeeded; a thread that
// cannot be found or deleted is treated as already gone.
func (s *CleanupService) Sweep(ctx context.Context) error {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	for _, entry := range entries {
		if !entry.Due(now) {
			continue
		}
		if err := s.messenger.DeleteThread(ctx, entry.ThreadID); err != nil {
			slog.Info("thread deletion failed, treating as gone", "thread", entry.ThreadID, "error", err)
		}
		if err := s.repo.Delete(ctx, entry.ThreadID); err != nil {
			slog.Warn("failed to dequeue thread deletion", "thread", entry.ThreadID, "error", err)
		}
	}
	return nil
}
