// Package carousel implements a circular index over a fixed list and the
// timer that auto-advances it.
package carousel

import "errors"

var ErrIndexOutOfRange = errors.New("carousel index out of range")

// Carousel is a rotating read view over items. It is not safe for
// concurrent use; callers serialize access.
type Carousel[T any] struct {
	items  []T
	offset int
}

func New[T any](items []T) *Carousel[T] {
	return &Carousel[T]{items: items}
}

func (c *Carousel[T]) Len() int {
	return len(c.items)
}

func (c *Carousel[T]) Offset() int {
	return c.offset
}

// Advance moves one step forward, wrapping to 0 after the last item.
func (c *Carousel[T]) Advance() int {
	if n := len(c.items); n > 0 {
		c.offset = (c.offset + 1) % n
	}
	return c.offset
}

// Retreat moves one step back, wrapping to the last item before 0.
func (c *Carousel[T]) Retreat() int {
	if n := len(c.items); n > 0 {
		c.offset = (c.offset - 1 + n) % n
	}
	return c.offset
}

func (c *Carousel[T]) Jump(i int) error {
	if i < 0 || i >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.offset = i
	return nil
}

// Window returns size items starting at the offset, wrapping around the end.
// Items repeat when the list is shorter than size.
func (c *Carousel[T]) Window(size int) []T {
	n := len(c.items)
	if n == 0 || size <= 0 {
		return nil
	}
	out := make([]T, size)
	for i := range out {
		out[i] = c.items[(c.offset+i)%n]
	}
	return out
}

// Current returns the item at the offset. ok is false for an empty list.
func (c *Carousel[T]) Current() (item T, ok bool) {
	if len(c.items) == 0 {
		return item, false
	}
	return c.items[c.offset], true
}

// Reset swaps in a new list and rewinds to the first item.
func (c *Carousel[T]) Reset(items []T) {
	c.items = items
	c.offset = 0
}

// Restore sets the offset from a stored value, clamping it into range.
func (c *Carousel[T]) Restore(offset int) {
	n := len(c.items)
	if n == 0 || offset < 0 {
		c.offset = 0
		return
	}
	c.offset = offset % n
}
