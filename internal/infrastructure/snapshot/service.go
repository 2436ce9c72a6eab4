package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultInterval is the debounce delay used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Service handles debounced layout persistence.
// Writes are fire-and-forget: failures are logged and the session continues.
type Service struct {
	persistUC *usecase.LayoutPersistenceUseCase
	provider  port.LayoutStateProvider
	interval  time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service.
func NewService(
	persistUC *usecase.LayoutPersistenceUseCase,
	provider port.LayoutStateProvider,
	intervalMs int,
) *Service {
	interval := DefaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	return &Service{
		persistUC: persistUC,
		provider:  provider,
		interval:  interval,
	}
}

// Start begins accepting dirty notifications.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop stops the service and saves the final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the layout changed. Saves are debounced so a burst of
// changes produces a single write.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout")
		}
	})
}

// Pending reports whether a change has not been written yet.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SaveNow forces an immediate save of pending changes.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	state := s.provider.GetLayoutState()
	if !state.IsSettled() {
		// A gesture is running; its end marks the layout dirty again.
		logging.FromContext(ctx).Debug().Msg("layout save deferred: gesture in progress")
		return nil
	}

	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	if err := s.persistUC.Save(ctx, s.provider.GetStorageKey(), state); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}
