package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dental-landing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, repo *MockViewStateRepository) (*ViewRegistry, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	registry := NewViewRegistry(ViewRegistryConfig{
		ServiceWindow:    3,
		AutoplayInterval: 5 * time.Second,
		IdleTimeout:      time.Minute,
		SweepInterval:    time.Hour,
		NewTicker:        clock.NewTicker,
	}, testLocations(), repo, discardLogger())
	t.Cleanup(registry.Stop)
	return registry, clock
}

func TestViewRegistry_MountGetUnmount(t *testing.T) {
	repo := &MockViewStateRepository{}
	registry, clock := newTestRegistry(t, repo)
	ctx := context.Background()

	view, err := registry.Mount(ctx, entity.RegionColombia)
	require.NoError(t, err)
	assert.True(t, view.Mounted())
	assert.Equal(t, entity.RegionColombia, view.State().Region)
	assert.Equal(t, int32(1), repo.SaveCallCount)
	assert.Equal(t, 1, registry.Count())

	got, err := registry.Get(ctx, view.ID())
	require.NoError(t, err)
	assert.Same(t, view, got)

	require.NoError(t, registry.Unmount(ctx, view.ID()))
	assert.False(t, view.Mounted())
	assert.Equal(t, 0, clock.live())
	assert.Equal(t, int32(1), repo.DeleteCallCount)
	assert.Equal(t, 0, registry.Count())

	_, err = registry.Get(ctx, view.ID())
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestViewRegistry_MountUnknownRegion(t *testing.T) {
	registry, _ := newTestRegistry(t, &MockViewStateRepository{})

	_, err := registry.Mount(context.Background(), entity.Region("peru"))
	assert.ErrorIs(t, err, ErrRegionNotFound)
}

func TestViewRegistry_MountedViewOutlivesRequestContext(t *testing.T) {
	registry, clock := newTestRegistry(t, &MockViewStateRepository{})

	reqCtx, cancel := context.WithCancel(context.Background())
	view, err := registry.Mount(reqCtx, entity.RegionChile)
	require.NoError(t, err)
	cancel()

	clock.fire(t)
	require.Eventually(t, testimonialOffsetIs(view, 1), time.Second, time.Millisecond)
}

func TestViewRegistry_SelectRegionPersists(t *testing.T) {
	repo := &MockViewStateRepository{}
	registry, _ := newTestRegistry(t, repo)
	ctx := context.Background()

	view, err := registry.Mount(ctx, entity.RegionChile)
	require.NoError(t, err)

	require.NoError(t, registry.SelectRegion(ctx, view, entity.RegionColombia))
	assert.Equal(t, int32(2), repo.SaveCallCount)

	// Same region: nothing to persist.
	require.NoError(t, registry.SelectRegion(ctx, view, entity.RegionColombia))
	assert.Equal(t, int32(2), repo.SaveCallCount)

	assert.ErrorIs(t, registry.SelectRegion(ctx, view, entity.Region("peru")), ErrRegionNotFound)
}

func TestViewRegistry_RestoresFromSnapshot(t *testing.T) {
	id := uuid.New()
	repo := &MockViewStateRepository{
		FindByIDFunc: func(ctx context.Context, got uuid.UUID) (*entity.ViewState, error) {
			if got != id {
				return nil, nil
			}
			return &entity.ViewState{
				ID:                id,
				Region:            entity.RegionColombia,
				ServiceOffset:     2,
				TestimonialOffset: 4,
			}, nil
		},
	}
	registry, clock := newTestRegistry(t, repo)

	view, err := registry.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, view.Mounted())

	state := view.State()
	assert.Equal(t, entity.RegionColombia, state.Region)
	assert.Equal(t, 2, state.ServiceOffset)
	assert.Equal(t, 4, state.TestimonialOffset)
	assert.Equal(t, 1, clock.live())

	again, err := registry.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Same(t, view, again)
}

func TestViewRegistry_RestoreErrors(t *testing.T) {
	storeErr := errors.New("redis down")
	repo := &MockViewStateRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.ViewState, error) {
			return nil, storeErr
		},
	}
	registry, _ := newTestRegistry(t, repo)

	_, err := registry.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storeErr)
}

func TestViewRegistry_PersistFailureIsNotFatal(t *testing.T) {
	repo := &MockViewStateRepository{
		SaveFunc: func(ctx context.Context, state *entity.ViewState) error {
			return errors.New("redis down")
		},
	}
	registry, _ := newTestRegistry(t, repo)

	view, err := registry.Mount(context.Background(), entity.RegionChile)
	require.NoError(t, err)
	assert.True(t, view.Mounted())
}

func TestViewRegistry_UnmountUnknown(t *testing.T) {
	registry, _ := newTestRegistry(t, &MockViewStateRepository{})

	err := registry.Unmount(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestViewRegistry_SweepsIdleViews(t *testing.T) {
	registry, clock := newTestRegistry(t, &MockViewStateRepository{})
	ctx := context.Background()

	idle, err := registry.Mount(ctx, entity.RegionChile)
	require.NoError(t, err)
	active, err := registry.Mount(ctx, entity.RegionColombia)
	require.NoError(t, err)

	idle.mu.Lock()
	idle.lastSeen = time.Now().Add(-2 * time.Minute)
	idle.mu.Unlock()

	assert.Equal(t, 1, registry.sweepIdle(time.Now()))
	assert.False(t, idle.Mounted())
	assert.True(t, active.Mounted())
	assert.Equal(t, 1, registry.Count())
	assert.Equal(t, 1, clock.live())
}

func TestViewRegistry_StopUnmountsEverything(t *testing.T) {
	registry, clock := newTestRegistry(t, &MockViewStateRepository{})
	ctx := context.Background()

	var views []*PageView
	for i := 0; i < 3; i++ {
		v, err := registry.Mount(ctx, entity.RegionChile)
		require.NoError(t, err)
		views = append(views, v)
	}

	registry.Stop()
	registry.Stop()

	for _, v := range views {
		assert.False(t, v.Mounted())
	}
	assert.Equal(t, 0, clock.live())
	assert.Equal(t, 0, registry.Count())
}
