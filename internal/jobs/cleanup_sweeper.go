package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/forgo/party/internal/service"
)

// CleanupSweeper runs the scheduled thread reaping pass. It ticks on a
// coarser interval than the lifecycle sweeper since retention windows are
// measured in hours.
type CleanupSweeper struct {
	cleanup  *service.CleanupService
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewCleanupSweeper creates a new cleanup sweeper job
func NewCleanupSweeper(cleanup *service.CleanupService, interval time.Duration) *CleanupSweeper {
	if interval == 0 {
		interval = 10 * time.Minute // Default tick
	}
	return &CleanupSweeper{
		cleanup:  cleanup,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the cleanup sweeper job
func (s *CleanupSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	log.Printf("Cleanup sweeper started (interval: %v)", s.interval)
}

// Stop gracefully stops the cleanup sweeper job
func (s *CleanupSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	log.Println("Cleanup sweeper stopped")
}

// run is the main loop
func (s *CleanupSweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep runs one reaping pass over the pending deletion queue
func (s *CleanupSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.cleanup.Sweep(ctx); err != nil {
		log.Printf("Error sweeping thread cleanup queue: %v", err)
	}
}

// RunOnce runs a single sweep (for testing or manual trigger)
func (s *CleanupSweeper) RunOnce(ctx context.Context) error {
	return s.cleanup.Sweep(ctx)
}

// IsRunning returns whether the sweeper is running
func (s *CleanupSweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
