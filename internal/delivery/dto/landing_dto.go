package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// Region keys are matched case-insensitively by entity.ParseRegion, so the
// request DTOs only check presence.

type MountViewRequest struct {
	Region string `json:"region"`
}

type SelectRegionRequest struct {
	Region string `json:"region" validate:"required"`
}

type JumpRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

// Response DTOs

type RegionSummary struct {
	Region string `json:"region"`
	Label  string `json:"label"`
	Flag   string `json:"flag"`
	City   string `json:"city"`
}

type StaffResponse struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Specialties []string `json:"specialties"`
	Experience  string   `json:"experience"`
	Description string   `json:"description"`
	Photo       string   `json:"photo"`
}

type ServiceResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TestimonialResponse struct {
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Treatment string `json:"treatment"`
}

type LocationResponse struct {
	RegionSummary
	Doctor       string                `json:"doctor"`
	Address      string                `json:"address"`
	Phone        string                `json:"phone"`
	WhatsApp     string                `json:"whatsapp,omitempty"`
	Instagram    string                `json:"instagram"`
	InstagramURL string                `json:"instagram_url"`
	Currency     string                `json:"currency"`
	VideoURL     string                `json:"video_url"`
	MapEmbedURL  string                `json:"map_embed_url,omitempty"`
	Staff        []StaffResponse       `json:"staff"`
	Services     []ServiceResponse     `json:"services"`
	Testimonials []TestimonialResponse `json:"testimonials"`
}

type ViewResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Region             string              `json:"region"`
	ServiceOffset      int                 `json:"service_offset"`
	TestimonialOffset  int                 `json:"testimonial_offset"`
	VisibleServices    []ServiceResponse   `json:"visible_services"`
	Testimonial        TestimonialResponse `json:"testimonial"`
	AutoplayIntervalMs int64               `json:"autoplay_interval_ms"`
	AutoplayActive     bool                `json:"autoplay_active"`
	UpdatedAt          time.Time           `json:"updated_at"`
	Location           LocationResponse    `json:"location"`
}

type LinksResponse struct {
	WhatsApp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram"`
}
