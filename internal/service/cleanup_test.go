package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forgo/party/internal/repository"
)

func newCleanupFixture(retention time.Duration) (*CleanupService, *repository.CleanupRepository, *mockMessenger, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}
	messenger := &mockMessenger{}
	repo := repository.NewCleanupRepository()
	svc := NewCleanupService(CleanupServiceConfig{
		Repo:      repo,
		Messenger: messenger,
		Retention: retention,
		Now:       clock.Now,
	})
	return svc, repo, messenger, clock
}

func TestCleanupService_Enqueue_LastWriteWins(t *testing.T) {
	t.Parallel()

	svc, repo, _, clock := newCleanupFixture(24 * time.Hour)
	ctx := context.Background()

	if err := svc.Enqueue(ctx, "thread-1", "chan-1"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	clock.Advance(time.Hour)
	if err := svc.Enqueue(ctx, "thread-1", "chan-1"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if want := clock.Now().Add(24 * time.Hour); !entries[0].DeleteAt.Equal(want) {
		t.Errorf("deleteAt = %v, want %v", entries[0].DeleteAt, want)
	}
}

func TestCleanupSweep_DeletesOnlyDueThreads(t *testing.T) {
	t.Parallel()

	svc, repo, messenger, clock := newCleanupFixture(24 * time.Hour)
	ctx := context.Background()

	if err := svc.Enqueue(ctx, "due", "chan-1"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	clock.Advance(12 * time.Hour)
	if err := svc.Enqueue(ctx, "not-due", "chan-1"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	clock.Advance(12 * time.Hour)
	if err := svc.Sweep(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(messenger.deletedThreads) != 1 || messenger.deletedThreads[0] != "due" {
		t.Errorf("expected only due thread deleted, got %v", messenger.deletedThreads)
	}
	remaining, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ThreadID != "not-due" {
		t.Errorf("expected not-due entry kept, got %v", remaining)
	}
}

func TestCleanupSweep_DropsEntryEvenWhenDeletionFails(t *testing.T) {
	t.Parallel()

	svc, repo, messenger, clock := newCleanupFixture(time.Hour)
	ctx := context.Background()
	messenger.deleteThreadErr = errors.New("thread already gone")

	if err := svc.Enqueue(ctx, "thread-1", "chan-1"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	clock.Advance(2 * time.Hour)
	if err := svc.Sweep(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	// One attempt, then the entry is gone for good.
	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected entry dropped after failed attempt, got %v", entries)
	}

	if err := svc.Sweep(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(messenger.deletedThreads) != 1 {
		t.Errorf("expected exactly one attempt, got %d", len(messenger.deletedThreads))
	}
}

func TestCleanupSweep_EmptyQueueIsNoop(t *testing.T) {
	t.Parallel()

	svc, _, messenger, _ := newCleanupFixture(time.Hour)

	if err := svc.Sweep(context.Background()); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(messenger.deletedThreads) != 0 {
		t.Errorf("expected no deletions, got %v", messenger.deletedThreads)
	}
}
