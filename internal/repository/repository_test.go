package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/party/internal/model"
)

func TestPartyRepository_PutGetRemove(t *testing.T) {
	t.Parallel()

	repo := NewPartyRepository()
	ctx := context.Background()

	party := &model.Party{ID: "p1", Mode: model.ModeRanked, LeaderID: "leader"}
	require.NoError(t, repo.Put(ctx, party))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "leader", got.LeaderID)

	// Stored copies are isolated from caller mutation.
	got.MemberIDs = append(got.MemberIDs, "intruder")
	again, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, again.MemberIDs)

	removed, err := repo.Remove(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "p1", removed.ID)

	missing, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	gone, err := repo.Remove(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestPartyRepository_HasLeader(t *testing.T) {
	t.Parallel()

	repo := NewPartyRepository()
	ctx := context.Background()

	has, err := repo.HasLeader(ctx, "leader")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.Put(ctx, &model.Party{ID: "p1", LeaderID: "leader"}))

	has, err = repo.HasLeader(ctx, "leader")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasLeader(ctx, "member")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPartyRepository_ListIsSnapshot(t *testing.T) {
	t.Parallel()

	repo := NewPartyRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &model.Party{ID: "p1", LeaderID: "a"}))
	require.NoError(t, repo.Put(ctx, &model.Party{ID: "p2", LeaderID: "b"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Removing during iteration of the snapshot must not affect it.
	for _, p := range list {
		_, err := repo.Remove(ctx, p.ID)
		require.NoError(t, err)
	}
	assert.Len(t, list, 2)

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDraftRepository_Consume(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository()
	ctx := context.Background()

	draft := model.NewDraft("user-1", model.ModeNormal)
	require.NoError(t, repo.Put(ctx, draft))

	got, err := repo.Consume(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.ModeNormal, got.Mode)

	// Second consume finds nothing; the draft cannot double-publish.
	again, err := repo.Consume(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestDraftRepository_PutReplaces(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository()
	ctx := context.Background()

	first := model.NewDraft("user-1", model.ModeRanked)
	first.Count = model.ExactCount(4)
	require.NoError(t, repo.Put(ctx, first))

	second := model.NewDraft("user-1", model.ModeInhouse)
	require.NoError(t, repo.Put(ctx, second))

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.ModeInhouse, got.Mode)
	assert.Equal(t, model.ExactCount(1), got.Count)
}

func TestCleanupRepository_PutIsIdempotentPerThread(t *testing.T) {
	t.Parallel()

	repo := NewCleanupRepository()
	ctx := context.Background()

	first := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	require.NoError(t, repo.Put(ctx, &model.PendingDeletion{ThreadID: "t1", ChannelID: "c1", DeleteAt: first}))
	require.NoError(t, repo.Put(ctx, &model.PendingDeletion{ThreadID: "t1", ChannelID: "c1", DeleteAt: later}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, later, list[0].DeleteAt)
}

func TestCleanupRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewCleanupRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &model.PendingDeletion{ThreadID: "t1", ChannelID: "c1"}))
	require.NoError(t, repo.Delete(ctx, "t1"))
	require.NoError(t, repo.Delete(ctx, "t1")) // already gone is fine

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
