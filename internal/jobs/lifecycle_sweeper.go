package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/forgo/party/internal/service"
)

// LifecycleSweeper runs the scheduled party aging pass
type LifecycleSweeper struct {
	lifecycle *service.LifecycleService
	interval  time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// NewLifecycleSweeper creates a new lifecycle sweeper job
func NewLifecycleSweeper(lifecycle *service.LifecycleService, interval time.Duration) *LifecycleSweeper {
	if interval == 0 {
		interval = 30 * time.Second // Default tick
	}
	return &LifecycleSweeper{
		lifecycle: lifecycle,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the lifecycle sweeper job
func (s *LifecycleSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	log.Printf("Lifecycle sweeper started (interval: %v)", s.interval)
}

// Stop gracefully stops the lifecycle sweeper job
func (s *LifecycleSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	log.Println("Lifecycle sweeper stopped")
}

// run is the main loop
func (s *LifecycleSweeper) run() {
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

// sweep runs one aging pass over all live parties
func (s *LifecycleSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.lifecycle.Sweep(ctx); err != nil {
		log.Printf("Error sweeping party lifecycle: %v", err)
	}
}

// RunOnce runs a single sweep (for testing or manual trigger)
func (s *LifecycleSweeper) RunOnce(ctx context.Context) error {
	return s.lifecycle.Sweep(ctx)
}

// IsRunning returns whether the sweeper is running
func (s *LifecycleSweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
