package service

import (
	"context"
	"sync"
	"time"

	"dental-landing/internal/domain/entity"
	"dental-landing/pkg/carousel"

	"github.com/google/uuid"
)

// PageView is the state of one mounted landing page: the selected region, the
// service carousel and the testimonial carousel with its autoplay timer.
//
// All mutations, including autoplay ticks, are serialized by mu. Each
// (re)arm of the autoplay bumps generation; a tick that was already in flight
// when the timer was replaced sees a stale generation and is dropped, so at
// most one timer ever advances the carousel.
type PageView struct {
	id            uuid.UUID
	serviceWindow int
	autoplay      *carousel.Autoplay
	now           func() time.Time

	mu           sync.Mutex
	ctx          context.Context
	location     *entity.LocationRecord
	services     *carousel.Carousel[entity.Service]
	testimonials *carousel.Carousel[entity.Testimonial]
	generation   uint64
	mounted      bool
	lastSeen     time.Time
	updatedAt    time.Time
}

// ViewSnapshot is everything the page needs to render one frame.
type ViewSnapshot struct {
	State            entity.ViewState
	Location         *entity.LocationRecord
	VisibleServices  []entity.Service
	Testimonial      entity.Testimonial
	AutoplayInterval time.Duration
	AutoplayActive   bool
}

func NewPageView(id uuid.UUID, location *entity.LocationRecord, serviceWindow int, autoplay *carousel.Autoplay) *PageView {
	now := time.Now
	return &PageView{
		id:            id,
		serviceWindow: serviceWindow,
		autoplay:      autoplay,
		now:           now,
		location:      location,
		services:      carousel.New(location.Services),
		testimonials:  carousel.New(location.Testimonials),
		lastSeen:      now(),
		updatedAt:     now(),
	}
}

func (v *PageView) ID() uuid.UUID {
	return v.id
}

// Mount starts the testimonial autoplay. The timer lives until Unmount or
// until ctx is cancelled, so ctx must outlive the request that mounted it.
func (v *PageView) Mount(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		return
	}
	v.ctx = ctx
	v.mounted = true
	v.armLocked()
}

// Unmount disarms autoplay and waits for its goroutine to exit.
func (v *PageView) Unmount() {
	v.mu.Lock()
	if !v.mounted {
		v.mu.Unlock()
		return
	}
	v.mounted = false
	v.generation++
	v.autoplay.Disarm()
	v.mu.Unlock()

	// Waiting outside the lock lets an in-flight tick finish.
	v.autoplay.Wait()
}

func (v *PageView) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mounted
}

// SelectRegion switches to another region's record. Both carousels rewind to
// their first item and the autoplay timer is replaced. Selecting the active
// region again changes nothing.
func (v *PageView) SelectRegion(location *entity.LocationRecord) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.touchLocked()
	if v.location.Region == location.Region {
		return false
	}

	v.location = location
	v.services.Reset(location.Services)
	v.testimonials.Reset(location.Testimonials)
	v.updatedAt = v.now()

	if v.mounted {
		v.armLocked()
	}
	return true
}

func (v *PageView) NextService() int {
	return v.mutate(v.services.Advance)
}

func (v *PageView) PrevService() int {
	return v.mutate(v.services.Retreat)
}

func (v *PageView) JumpService(i int) error {
	var err error
	v.mutate(func() int {
		err = v.services.Jump(i)
		return v.services.Offset()
	})
	return err
}

// NextTestimonial is a manual advance. It does not reset or pause autoplay,
// so a tick that is due right after it advances again.
func (v *PageView) NextTestimonial() int {
	return v.mutate(v.testimonials.Advance)
}

func (v *PageView) PrevTestimonial() int {
	return v.mutate(v.testimonials.Retreat)
}

func (v *PageView) JumpTestimonial(i int) error {
	var err error
	v.mutate(func() int {
		err = v.testimonials.Jump(i)
		return v.testimonials.Offset()
	})
	return err
}

// Restore applies stored offsets, e.g. after the view was rebuilt from a
// snapshot.
func (v *PageView) Restore(serviceOffset, testimonialOffset int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.services.Restore(serviceOffset)
	v.testimonials.Restore(testimonialOffset)
}

func (v *PageView) State() entity.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stateLocked()
}

func (v *PageView) Snapshot() ViewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	testimonial, _ := v.testimonials.Current()
	return ViewSnapshot{
		State:            v.stateLocked(),
		Location:         v.location,
		VisibleServices:  v.services.Window(v.serviceWindow),
		Testimonial:      testimonial,
		AutoplayInterval: v.autoplay.Interval(),
		AutoplayActive:   v.mounted && v.autoplay.Active(),
	}
}

// Touch records visitor activity without changing state.
func (v *PageView) Touch() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.touchLocked()
}

func (v *PageView) LastSeen() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

func (v *PageView) mutate(fn func() int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.touchLocked()
	offset := fn()
	v.updatedAt = v.now()
	return offset
}

func (v *PageView) touchLocked() {
	v.lastSeen = v.now()
}

func (v *PageView) stateLocked() entity.ViewState {
	return entity.ViewState{
		ID:                v.id,
		Region:            v.location.Region,
		ServiceOffset:     v.services.Offset(),
		TestimonialOffset: v.testimonials.Offset(),
		UpdatedAt:         v.updatedAt,
	}
}

// armLocked replaces the autoplay timer with one bound to a new generation.
func (v *PageView) armLocked() {
	v.generation++
	gen := v.generation
	v.autoplay.Arm(v.ctx, func() { v.autoAdvance(gen) })
}

func (v *PageView) autoAdvance(gen uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted || gen != v.generation {
		return
	}
	v.testimonials.Advance()
	v.updatedAt = v.now()
}
