package converter

import (
	"dental-landing/internal/delivery/dto"
	"dental-landing/internal/domain/entity"
	"dental-landing/internal/service"
)

// LocationToSummary converts a LocationRecord to the region picker entry
func LocationToSummary(record *entity.LocationRecord) dto.RegionSummary {
	return dto.RegionSummary{
		Region: record.Region.String(),
		Label:  record.Label,
		Flag:   record.Flag,
		City:   record.City,
	}
}

// LocationToResponse converts a LocationRecord to LocationResponse DTO
func LocationToResponse(record *entity.LocationRecord) *dto.LocationResponse {
	if record == nil {
		return nil
	}

	staff := make([]dto.StaffResponse, len(record.Staff))
	for i, s := range record.Staff {
		staff[i] = dto.StaffResponse{
			Name:        s.Name,
			Title:       s.Title,
			Specialties: s.Specialties,
			Experience:  s.Experience,
			Description: s.Description,
			Photo:       s.Photo(),
		}
	}

	testimonials := make([]dto.TestimonialResponse, len(record.Testimonials))
	for i, t := range record.Testimonials {
		testimonials[i] = TestimonialToResponse(t)
	}

	return &dto.LocationResponse{
		RegionSummary: LocationToSummary(record),
		Doctor:        record.Doctor,
		Address:       record.Address,
		Phone:         record.Phone,
		WhatsApp:      record.WhatsApp,
		Instagram:     record.Instagram,
		InstagramURL:  record.InstagramURL(),
		Currency:      record.Currency,
		VideoURL:      record.VideoURL,
		MapEmbedURL:   record.MapEmbedURL,
		Staff:         staff,
		Services:      ServicesToResponses(record.Services),
		Testimonials:  testimonials,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		responses[i] = dto.ServiceResponse{Name: s.Name, Description: s.Description}
	}
	return responses
}

func TestimonialToResponse(t entity.Testimonial) dto.TestimonialResponse {
	return dto.TestimonialResponse{
		Author:    t.Author,
		Rating:    t.Rating,
		Comment:   t.Comment,
		Treatment: t.Treatment,
	}
}

// SnapshotToResponse converts a rendered view frame to ViewResponse DTO
func SnapshotToResponse(snap service.ViewSnapshot) *dto.ViewResponse {
	return &dto.ViewResponse{
		ID:                 snap.State.ID,
		Region:             snap.State.Region.String(),
		ServiceOffset:      snap.State.ServiceOffset,
		TestimonialOffset:  snap.State.TestimonialOffset,
		VisibleServices:    ServicesToResponses(snap.VisibleServices),
		Testimonial:        TestimonialToResponse(snap.Testimonial),
		AutoplayIntervalMs: snap.AutoplayInterval.Milliseconds(),
		AutoplayActive:     snap.AutoplayActive,
		UpdatedAt:          snap.State.UpdatedAt,
		Location:           *LocationToResponse(snap.Location),
	}
}
