package entity

import (
	"time"

	"github.com/google/uuid"
)

// ViewState is the mutable part of a mounted page view.
type ViewState struct {
	ID                uuid.UUID `json:"id"`
	Region            Region    `json:"region"`
	ServiceOffset     int       `json:"service_offset"`
	TestimonialOffset int       `json:"testimonial_offset"`
	UpdatedAt         time.Time `json:"updated_at"`
}
