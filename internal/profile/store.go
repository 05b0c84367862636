package profile

import (
	"context"
	"sync"
	"time"

	"github.com/singhsaravjit/portfolio-assistant/internal/observability"
)

// Provider loads a snapshot from some backing source. Sections that
// cannot be loaded are left nil; Load fails only when the source itself
// is unreachable in a way that yields no data at all.
type Provider interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Store holds the current snapshot and replaces it wholesale on
// refresh. Readers get a shallow copy; section records are never
// mutated after publication, so sharing the pointers is safe.
type Store struct {
	provider Provider

	mu   sync.RWMutex
	snap Snapshot
}

func NewStore(provider Provider) *Store {
	return &Store{provider: provider}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Replace publishes a new snapshot.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Refresh loads from the provider and publishes the result. Sections
// the provider could not load stay populated from the previous
// snapshot, so a flaky source degrades instead of blanking fields.
func (s *Store) Refresh(ctx context.Context) error {
	next, err := s.provider.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.snap
	if next.About == nil {
		next.About = prev.About
	}
	if next.Skills == nil {
		next.Skills = prev.Skills
	}
	if next.Education == nil {
		next.Education = prev.Education
	}
	if next.Experiences == nil {
		next.Experiences = prev.Experiences
	}
	if next.Projects == nil {
		next.Projects = prev.Projects
	}
	if next.Social == nil {
		next.Social = prev.Social
	}
	s.snap = next
	s.mu.Unlock()
	return nil
}

// RunRefresher refreshes on the given interval until ctx is done.
func (s *Store) RunRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	log := observability.Logger()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				log.Warn("profile refresh failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
