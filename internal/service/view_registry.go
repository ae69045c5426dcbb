package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"dental-landing/internal/domain/entity"
	"dental-landing/internal/domain/repository"
	"dental-landing/pkg/carousel"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors
// =============================================================================

var (
	ErrViewNotFound   = errors.New("view not found")
	ErrRegionNotFound = errors.New("region not found")
)

// =============================================================================
// Constants
// =============================================================================

const (
	defaultIdleTimeout   = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// =============================================================================
// Types
// =============================================================================

// ViewRegistryConfig tunes view lifetimes and carousels.
type ViewRegistryConfig struct {
	ServiceWindow    int
	AutoplayInterval time.Duration
	IdleTimeout      time.Duration
	SweepInterval    time.Duration

	// NewTicker overrides the autoplay clock. Nil uses time.Ticker.
	NewTicker carousel.TickerFunc
}

// ViewRegistry owns every mounted PageView in this process.
//
// Key Features:
//   - Each view's autoplay goroutine is bound to the registry context, not to
//     the request that mounted it
//   - Idle views are unmounted by a background sweeper
//   - Snapshots go to a ViewStateRepository so a view unknown to this process
//     can be rebuilt on demand
type ViewRegistry struct {
	cfg           ViewRegistryConfig
	locationRepo  repository.LocationRepository
	viewStateRepo repository.ViewStateRepository
	log           *logrus.Logger

	views sync.Map // map[uuid.UUID]*PageView

	// Graceful shutdown
	baseCtx  context.Context
	cancel   context.CancelFunc
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// =============================================================================
// Constructor
// =============================================================================

// NewViewRegistry creates a ViewRegistry and starts the idle sweeper.
// Call Stop() during graceful shutdown.
func NewViewRegistry(
	cfg ViewRegistryConfig,
	locationRepo repository.LocationRepository,
	viewStateRepo repository.ViewStateRepository,
	log *logrus.Logger,
) *ViewRegistry {
	if cfg.ServiceWindow < 1 {
		cfg.ServiceWindow = 3
	}
	if cfg.AutoplayInterval <= 0 {
		cfg.AutoplayInterval = 5 * time.Second
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &ViewRegistry{
		cfg:           cfg,
		locationRepo:  locationRepo,
		viewStateRepo: viewStateRepo,
		log:           log,
		baseCtx:       ctx,
		cancel:        cancel,
		stopChan:      make(chan struct{}),
	}

	r.wg.Add(1)
	go r.sweepLoop()

	return r
}

// =============================================================================
// Lifecycle Methods
// =============================================================================

// Stop unmounts every view and stops the sweeper.
// Safe to call multiple times.
func (r *ViewRegistry) Stop() {
	if !r.stopped.CompareAndSwap(false, true) {
		return
	}
	close(r.stopChan)
	r.wg.Wait()

	var count int
	r.views.Range(func(key, value any) bool {
		value.(*PageView).Unmount()
		r.views.Delete(key)
		count++
		return true
	})
	r.cancel()

	r.log.Infof("ViewRegistry stopped, %d views unmounted", count)
}

// =============================================================================
// Public Methods
// =============================================================================

// Mount creates a view on region and starts its autoplay.
func (r *ViewRegistry) Mount(ctx context.Context, region entity.Region) (*PageView, error) {
	location, err := r.findLocation(ctx, region)
	if err != nil {
		return nil, err
	}

	view := r.newView(uuid.New(), location)
	view.Mount(r.baseCtx)
	r.views.Store(view.ID(), view)

	r.Persist(ctx, view)
	r.log.Debugf("Mounted view %s on region %s", view.ID(), region)
	return view, nil
}

// Get returns a mounted view. A view unknown to this process is rebuilt from
// its stored snapshot when one exists.
func (r *ViewRegistry) Get(ctx context.Context, id uuid.UUID) (*PageView, error) {
	if value, ok := r.views.Load(id); ok {
		view := value.(*PageView)
		view.Touch()
		return view, nil
	}
	return r.restore(ctx, id)
}

// SelectRegion switches the view's region and persists the result.
func (r *ViewRegistry) SelectRegion(ctx context.Context, view *PageView, region entity.Region) error {
	location, err := r.findLocation(ctx, region)
	if err != nil {
		return err
	}
	if view.SelectRegion(location) {
		r.log.Debugf("View %s switched to region %s", view.ID(), region)
		r.Persist(ctx, view)
	}
	return nil
}

// Unmount stops the view's autoplay and forgets it.
func (r *ViewRegistry) Unmount(ctx context.Context, id uuid.UUID) error {
	value, ok := r.views.LoadAndDelete(id)
	if !ok {
		state, err := r.viewStateRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if state == nil {
			return ErrViewNotFound
		}
	} else {
		value.(*PageView).Unmount()
	}

	if err := r.viewStateRepo.Delete(ctx, id); err != nil {
		r.log.Warnf("Failed to delete snapshot for view %s: %+v", id, err)
	}

	r.log.Debugf("Unmounted view %s", id)
	return nil
}

// Persist stores the view's state. Failures are logged, the in-process view
// stays authoritative.
func (r *ViewRegistry) Persist(ctx context.Context, view *PageView) {
	state := view.State()
	if err := r.viewStateRepo.Save(ctx, &state); err != nil {
		r.log.Warnf("Failed to persist view %s: %+v", view.ID(), err)
	}
}

// Count returns the number of views mounted in this process.
func (r *ViewRegistry) Count() int {
	var n int
	r.views.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// =============================================================================
// Private Helper Methods
// =============================================================================

func (r *ViewRegistry) newView(id uuid.UUID, location *entity.LocationRecord) *PageView {
	autoplay := carousel.NewAutoplay(r.cfg.AutoplayInterval, r.cfg.NewTicker)
	return NewPageView(id, location, r.cfg.ServiceWindow, autoplay)
}

func (r *ViewRegistry) findLocation(ctx context.Context, region entity.Region) (*entity.LocationRecord, error) {
	location, err := r.locationRepo.FindByRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("find location %s: %w", region, err)
	}
	if location == nil {
		return nil, ErrRegionNotFound
	}
	return location, nil
}

func (r *ViewRegistry) restore(ctx context.Context, id uuid.UUID) (*PageView, error) {
	if r.stopped.Load() {
		return nil, ErrViewNotFound
	}

	state, err := r.viewStateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load snapshot for view %s: %w", id, err)
	}
	if state == nil {
		return nil, ErrViewNotFound
	}

	location, err := r.findLocation(ctx, state.Region)
	if err != nil {
		if errors.Is(err, ErrRegionNotFound) {
			return nil, ErrViewNotFound
		}
		return nil, err
	}

	view := r.newView(id, location)
	view.Restore(state.ServiceOffset, state.TestimonialOffset)

	// Another request may have restored the same view concurrently.
	actual, loaded := r.views.LoadOrStore(id, view)
	if loaded {
		return actual.(*PageView), nil
	}
	view.Mount(r.baseCtx)

	r.log.Infof("Restored view %s from snapshot (region=%s)", id, state.Region)
	return view, nil
}

// sweepLoop runs in background to unmount idle views
func (r *ViewRegistry) sweepLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			r.log.Debug("View sweeper stopping")
			return
		case <-ticker.C:
			r.sweepIdle(time.Now())
		}
	}
}

// sweepIdle unmounts views not seen since now - IdleTimeout.
func (r *ViewRegistry) sweepIdle(now time.Time) int {
	cutoff := now.Add(-r.cfg.IdleTimeout)
	var swept int

	r.views.Range(func(key, value any) bool {
		view, ok := value.(*PageView)
		if !ok {
			return true
		}
		if view.LastSeen().Before(cutoff) {
			if r.views.CompareAndDelete(key, value) {
				view.Unmount()
				swept++
			}
		}
		return true
	})

	if swept > 0 {
		r.log.Debugf("Swept %d idle views", swept)
	}
	return swept
}
