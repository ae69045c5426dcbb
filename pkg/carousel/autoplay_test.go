package carousel

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func (c *manualClock) NewTicker(time.Duration) Ticker {
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

// fire delivers one tick to the newest ticker.
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

func TestAutoplay_TicksUntilDisarmed(t *testing.T) {
	clock := &manualClock{}
	a := NewAutoplay(5*time.Second, clock.NewTicker)

	var ticks atomic.Int32
	a.Arm(context.Background(), func() { ticks.Add(1) })
	require.True(t, a.Active())

	for i := 0; i < 3; i++ {
		clock.fire(t)
	}
	require.Eventually(t, func() bool { return ticks.Load() == 3 }, time.Second, time.Millisecond)

	a.Disarm()
	a.Wait()
	assert.False(t, a.Active())
	assert.True(t, clock.all()[0].stopped.Load())
}

func TestAutoplay_RearmReleasesPreviousTicker(t *testing.T) {
	clock := &manualClock{}
	a := NewAutoplay(time.Second, clock.NewTicker)

	var ticks atomic.Int32
	for i := 0; i < 5; i++ {
		a.Arm(context.Background(), func() { ticks.Add(1) })
	}

	tickers := clock.all()
	require.Len(t, tickers, 5)
	for _, old := range tickers[:4] {
		assert.True(t, old.stopped.Load())
	}
	assert.False(t, tickers[4].stopped.Load())

	clock.fire(t)
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)

	a.Disarm()
	a.Wait()
	assert.Equal(t, int32(1), ticks.Load())
}

func TestAutoplay_StopsWhenContextCancelled(t *testing.T) {
	clock := &manualClock{}
	a := NewAutoplay(time.Second, clock.NewTicker)

	ctx, cancel := context.WithCancel(context.Background())
	a.Arm(ctx, func() {})
	cancel()

	done := make(chan struct{})
	go func() {
		a.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("autoplay goroutine leaked after cancel")
	}

	assert.False(t, a.Active())
	assert.True(t, clock.all()[0].stopped.Load())
}

func TestAutoplay_CancelledContextKeepsNewerArm(t *testing.T) {
	clock := &manualClock{}
	a := NewAutoplay(time.Second, clock.NewTicker)

	ctx, cancel := context.WithCancel(context.Background())
	a.Arm(ctx, func() {})

	var ticks atomic.Int32
	a.Arm(context.Background(), func() { ticks.Add(1) })
	cancel()

	clock.fire(t)
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)
	assert.True(t, a.Active())

	a.Disarm()
	a.Wait()
	assert.False(t, a.Active())
}

func TestAutoplay_DisarmWithoutArm(t *testing.T) {
	a := NewAutoplay(time.Second, nil)
	a.Disarm()
	a.Wait()
	assert.False(t, a.Active())
	assert.Equal(t, time.Second, a.Interval())
}
