package carousel

import (
	"context"
	"sync"
	"time"
)

// Ticker is the part of *time.Ticker that Autoplay needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker is the production TickerFunc.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Autoplay owns at most one running ticker. Arm always releases the previous
// ticker before starting a new one, and Disarm releases it for good.
type Autoplay struct {
	interval  time.Duration
	newTicker TickerFunc

	mu     sync.Mutex
	ticker Ticker
	cancel context.CancelFunc
	seq    uint64
	wg     sync.WaitGroup
}

func NewAutoplay(interval time.Duration, newTicker TickerFunc) *Autoplay {
	if newTicker == nil {
		newTicker = NewTimeTicker
	}
	return &Autoplay{
		interval:  interval,
		newTicker: newTicker,
	}
}

func (a *Autoplay) Interval() time.Duration {
	return a.interval
}

// Arm starts calling tick every interval until the next Arm, Disarm, or
// until ctx is cancelled. tick runs on the autoplay goroutine.
//
// Arm does not wait for a previous tick callback to return, so it is safe to
// call while holding a lock that tick also takes.
func (a *Autoplay) Arm(ctx context.Context, tick func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.releaseLocked()

	ctx, cancel := context.WithCancel(ctx)
	t := a.newTicker(a.interval)
	a.ticker = t
	a.cancel = cancel
	a.seq++
	seq := a.seq

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.expire(seq)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C():
				if ctx.Err() != nil {
					return
				}
				tick()
			}
		}
	}()
}

// Disarm stops the ticker. It returns immediately; use Wait to block until
// the goroutine has exited.
func (a *Autoplay) Disarm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.releaseLocked()
}

// Wait blocks until every goroutine started by Arm has returned.
func (a *Autoplay) Wait() {
	a.wg.Wait()
}

// Active reports whether a ticker is currently armed and its goroutine has
// not exited.
func (a *Autoplay) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticker != nil
}

// expire releases the ticker when its goroutine exits on its own, e.g. after
// the parent context was cancelled. A newer Arm is left untouched.
func (a *Autoplay) expire(seq uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.seq == seq {
		a.releaseLocked()
	}
}

func (a *Autoplay) releaseLocked() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}
