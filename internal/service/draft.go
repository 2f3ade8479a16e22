package service

import (
	"context"

	"github.com/forgo/party/internal/model"
)

// DraftRepository defines the interface for draft storage
type DraftRepository interface {
	Put(ctx context.Context, draft *model.Draft) error
	Get(ctx context.Context, ownerID string) (*model.Draft, error)
	Consume(ctx context.Context, ownerID string) (*model.Draft, error)
	Delete(ctx context.Context, ownerID string) error
}

// DraftService handles the per-user configuration cache feeding publication
type DraftService struct {
	draftRepo DraftRepository
	partyRepo PartyRepository
}

// DraftServiceConfig holds configuration for the draft service
type DraftServiceConfig struct {
	DraftRepo DraftRepository
	PartyRepo PartyRepository
}

// NewDraftService creates a new draft service
func NewDraftService(cfg DraftServiceConfig) *DraftService {
	return &DraftService{
		draftRepo: cfg.DraftRepo,
		partyRepo: cfg.PartyRepo,
	}
}

// Start begins configuration of a new party. It fails with ErrAlreadyLeading
// while the user leads a live party, and otherwise replaces any prior draft
// with defaults (one player, unrestricted ranks, no voice channel).
func (s *DraftService) Start(ctx context.Context, userID string, mode model.Mode) (*model.Draft, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	leading, err := s.partyRepo.HasLeader(ctx, userID)
	if err != nil {
		return nil, err
	}
	if leading {
		return nil, ErrAlreadyLeading
	}

	draft := model.NewDraft(userID, mode)
	if err := s.draftRepo.Put(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get returns the user's current draft, or ErrNoDraft
func (s *DraftService) Get(ctx context.Context, userID string) (*model.Draft, error) {
	draft, err := s.draftRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	return draft, nil
}

// SetPlayerCount overwrites the draft's requested player count.
// ErrNoDraft covers stale menu actions after the cache moved on.
func (s *DraftService) SetPlayerCount(ctx context.Context, userID string, count model.PlayerCount) (*model.Draft, error) {
	if !count.Valid() {
		return nil, ErrInvalidPlayerCount
	}
	return s.edit(ctx, userID, func(d *model.Draft) {
		d.Count = count
	})
}

// SetRanks overwrites the draft's rank selection (1-5 known ranks)
func (s *DraftService) SetRanks(ctx context.Context, userID string, ranks []model.Rank) (*model.Draft, error) {
	if len(ranks) == 0 || len(ranks) > model.MaxRanksPerDraft {
		return nil, ErrInvalidRankSelection
	}
	seen := make(map[model.Rank]bool, len(ranks))
	for _, r := range ranks {
		if !r.Valid() || seen[r] {
			return nil, ErrInvalidRankSelection
		}
		seen[r] = true
	}
	return s.edit(ctx, userID, func(d *model.Draft) {
		d.Ranks = append([]model.Rank(nil), ranks...)
	})
}

// SetVoiceChannel overwrites the draft's voice channel; empty clears it
func (s *DraftService) SetVoiceChannel(ctx context.Context, userID, channelID string) (*model.Draft, error) {
	return s.edit(ctx, userID, func(d *model.Draft) {
		d.VoiceChannelID = channelID
	})
}

// Consume atomically reads and deletes the user's draft so it cannot be
// published twice. Returns ErrNoDraft if nothing is in progress.
func (s *DraftService) Consume(ctx context.Context, userID string) (*model.Draft, error) {
	draft, err := s.draftRepo.Consume(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	return draft, nil
}

func (s *DraftService) edit(ctx context.Context, userID string, apply func(*model.Draft)) (*model.Draft, error) {
	draft, err := s.draftRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	apply(draft)
	if err := s.draftRepo.Put(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
