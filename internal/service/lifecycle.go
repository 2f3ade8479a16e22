package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgo/party/internal/model"
)

// CleanupQueue defines the interface for scheduling retention-delayed
// thread destruction
type CleanupQueue interface {
	Enqueue(ctx context.Context, threadID, channelID string) error
}

// LifecycleService ages live parties: it warns leaders near expiry and
// retires parties past it. One Sweep call is one tick.
type LifecycleService struct {
	partyRepo   PartyRepository
	messenger   Messenger
	cleanup     CleanupQueue
	warnAfter   time.Duration
	expireAfter time.Duration
	now         func() time.Time
}

// LifecycleServiceConfig holds configuration for the lifecycle service
type LifecycleServiceConfig struct {
	PartyRepo   PartyRepository
	Messenger   Messenger
	Cleanup     CleanupQueue
	WarnAfter   time.Duration
	ExpireAfter time.Duration
	Now         func() time.Time // Optional, defaults to time.Now
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(cfg LifecycleServiceConfig) *LifecycleService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &LifecycleService{
		partyRepo:   cfg.PartyRepo,
		messenger:   cfg.Messenger,
		cleanup:     cfg.Cleanup,
		warnAfter:   cfg.WarnAfter,
		expireAfter: cfg.ExpireAfter,
		now:         now,
	}
}

// Sweep evaluates every live party once. The warning check runs before the
// expiry check per party, and both may fire within the same tick; expiry wins
// since it removes the party. Parties that vanish mid-sweep (stopped by their
// leader) are treated as already handled.
func (s *LifecycleService) Sweep(ctx context.Context) error {
	parties, err := s.partyRepo.List(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	for _, party := range parties {
		age := party.Age(now)
		if age >= s.warnAfter && !party.Warned {
			s.warn(ctx, party.ID)
		}
		if age >= s.expireAfter {
			s.expire(ctx, party.ID)
		}
	}
	return nil
}

// warn marks the party warned, then posts the reminder into its thread.
// The flag is committed before the post so a transport failure cannot cause
// repeated warnings; extend is the only path that resets it.
func (s *LifecycleService) warn(ctx context.Context, partyID string) {
	party, err := s.partyRepo.Get(ctx, partyID)
	if err != nil || party == nil || party.Warned {
		return
	}

	party.Warned = true
	if err := s.partyRepo.Put(ctx, party); err != nil {
		return
	}

	content := fmt.Sprintf("⚠️ <@%s> are you still looking for players?", party.LeaderID)
	actions := []MessageAction{
		{ID: EncodeActionID(ActionExtend, party.ID), Label: "Still looking", Style: ActionStyleSuccess},
		{ID: EncodeActionID(ActionStop, party.ID), Label: "Close", Style: ActionStyleDanger},
	}
	messageID, err := s.messenger.PostMessage(ctx, party.ThreadID, content, actions)
	if err != nil {
		slog.Warn("failed to post expiry warning", "party", party.ID, "error", err)
		return
	}

	// The party may have been stopped or extended while the post was in
	// flight; only a still-warned party records the message reference.
	party, err = s.partyRepo.Get(ctx, partyID)
	if err != nil || party == nil || !party.Warned {
		return
	}
	party.WarnMessageID = messageID
	if err := s.partyRepo.Put(ctx, party); err != nil {
		slog.Warn("failed to record warning message", "party", partyID, "error", err)
	}
}

// expire removes the party from the registry, then retires its artifacts
func (s *LifecycleService) expire(ctx context.Context, partyID string) {
	removed, err := s.partyRepo.Remove(ctx, partyID)
	if err != nil || removed == nil {
		return
	}
	slog.Info("party expired", "party", removed.ID, "leader", removed.LeaderID, "mode", string(removed.Mode))
	s.Retire(ctx, removed)
}

// Retire tears down an ended party's chat artifacts: the thread content is
// purged with a closing notice, the thread is queued for retention-delayed
// deletion, and the announcement message is removed. The party must already
// be out of the registry; transport failures here are cosmetic.
func (s *LifecycleService) Retire(ctx context.Context, party *model.Party) {
	if err := s.messenger.PurgeThread(ctx, party.ThreadID); err != nil {
		slog.Warn("failed to purge party thread", "party", party.ID, "error", err)
	}
	if _, err := s.messenger.PostMessage(ctx, party.ThreadID,
		"🔒 *This announcement has ended. The thread will be deleted shortly.*", nil); err != nil {
		slog.Warn("failed to post closing notice", "party", party.ID, "error", err)
	}
	if err := s.cleanup.Enqueue(ctx, party.ThreadID, party.ChannelID); err != nil {
		slog.Warn("failed to enqueue thread deletion", "party", party.ID, "error", err)
	}
	if err := s.messenger.DeleteMessage(ctx, party.ChannelID, party.MessageID); err != nil {
		slog.Warn("failed to delete announcement", "party", party.ID, "error", err)
	}
}
