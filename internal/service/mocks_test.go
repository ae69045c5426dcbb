package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dental-landing/internal/domain/entity"
	"dental-landing/internal/domain/repository"
	"dental-landing/pkg/carousel"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// --- MockViewStateRepository ---
var _ repository.ViewStateRepository = (*MockViewStateRepository)(nil)

type MockViewStateRepository struct {
	SaveFunc     func(ctx context.Context, state *entity.ViewState) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.ViewState, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	SaveCallCount   int32
	DeleteCallCount int32
}

func (m *MockViewStateRepository) Save(ctx context.Context, state *entity.ViewState) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, state)
	}
	return nil
}

func (m *MockViewStateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ViewState, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockViewStateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// --- staticLocations ---
var _ repository.LocationRepository = staticLocations{}

type staticLocations map[entity.Region]*entity.LocationRecord

func (s staticLocations) FindByRegion(_ context.Context, region entity.Region) (*entity.LocationRecord, error) {
	return s[region], nil
}

func (s staticLocations) FindAll(context.Context) ([]entity.LocationRecord, error) {
	var out []entity.LocationRecord
	for _, region := range entity.Regions() {
		if r, ok := s[region]; ok {
			out = append(out, *r)
		}
	}
	return out, nil
}

func newLocation(region entity.Region, services, testimonials int) *entity.LocationRecord {
	record := &entity.LocationRecord{
		Region:    region,
		Label:     string(region),
		Instagram: "clinic_" + string(region),
		Staff:     []entity.Staff{{Name: "Dra. Test", Title: "Odontóloga"}},
	}
	for i := 0; i < services; i++ {
		record.Services = append(record.Services, entity.Service{Name: fmt.Sprintf("%s-service-%d", region, i)})
	}
	for i := 0; i < testimonials; i++ {
		record.Testimonials = append(record.Testimonials, entity.Testimonial{
			Author: fmt.Sprintf("%s-author-%d", region, i),
			Rating: 5,
		})
	}
	return record
}

func testLocations() staticLocations {
	return staticLocations{
		entity.RegionChile:    newLocation(entity.RegionChile, 6, 6),
		entity.RegionColombia: newLocation(entity.RegionColombia, 6, 6),
	}
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- manualClock ---

type manualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               { m.stopped.Store(true) }

type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (c *manualClock) NewTicker(time.Duration) carousel.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *manualClock) all() []*manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*manualTicker(nil), c.tickers...)
}

func (c *manualClock) live() int {
	var n int
	for _, t := range c.all() {
		if !t.stopped.Load() {
			n++
		}
	}
	return n
}

// fire delivers one tick to the newest ticker and returns once the autoplay
// goroutine has taken it.
func (c *manualClock) fire(t *testing.T) {
	t.Helper()
	tickers := c.all()
	require.NotEmpty(t, tickers)
	select {
	case tickers[len(tickers)-1].ch <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("autoplay goroutine did not receive tick")
	}
}
