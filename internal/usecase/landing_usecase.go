package usecase

import (
	"context"
	"errors"

	"dental-landing/internal/converter"
	"dental-landing/internal/delivery/dto"
	"dental-landing/internal/domain/entity"
	"dental-landing/internal/domain/repository"
	"dental-landing/internal/service"
	"dental-landing/pkg/carousel"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRegion = errors.New("invalid region")
	ErrInvalidIndex  = errors.New("carousel index out of range")
)

// Direction is a single carousel step.
type Direction int

const (
	Next Direction = iota
	Prev
)

// ParseDirection maps the "next" / "prev" path segment to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "next":
		return Next, true
	case "prev":
		return Prev, true
	}
	return 0, false
}

type LandingUsecase interface {
	ListRegions(ctx context.Context) ([]dto.RegionSummary, error)
	GetLocation(ctx context.Context, region string) (*dto.LocationResponse, error)

	MountView(ctx context.Context, region string) (*dto.ViewResponse, error)
	GetView(ctx context.Context, viewID uuid.UUID) (*dto.ViewResponse, error)
	UnmountView(ctx context.Context, viewID uuid.UUID) error
	SelectRegion(ctx context.Context, viewID uuid.UUID, region string) (*dto.ViewResponse, error)

	MoveServices(ctx context.Context, viewID uuid.UUID, dir Direction) (*dto.ViewResponse, error)
	JumpService(ctx context.Context, viewID uuid.UUID, index int) (*dto.ViewResponse, error)
	MoveTestimonials(ctx context.Context, viewID uuid.UUID, dir Direction) (*dto.ViewResponse, error)
	JumpTestimonial(ctx context.Context, viewID uuid.UUID, index int) (*dto.ViewResponse, error)

	GetLinks(ctx context.Context, viewID uuid.UUID) (*dto.LinksResponse, error)
}

type landingUsecase struct {
	log           *logrus.Logger
	locationRepo  repository.LocationRepository
	registry      *service.ViewRegistry
	defaultRegion entity.Region
}

func NewLandingUsecase(
	log *logrus.Logger,
	locationRepo repository.LocationRepository,
	registry *service.ViewRegistry,
	defaultRegion entity.Region,
) LandingUsecase {
	if !defaultRegion.Valid() {
		defaultRegion = entity.RegionChile
	}
	return &landingUsecase{
		log:           log,
		locationRepo:  locationRepo,
		registry:      registry,
		defaultRegion: defaultRegion,
	}
}

func (u *landingUsecase) ListRegions(ctx context.Context) ([]dto.RegionSummary, error) {
	records, err := u.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.RegionSummary, len(records))
	for i := range records {
		summaries[i] = converter.LocationToSummary(&records[i])
	}
	return summaries, nil
}

func (u *landingUsecase) GetLocation(ctx context.Context, region string) (*dto.LocationResponse, error) {
	r, err := entity.ParseRegion(region)
	if err != nil {
		return nil, service.ErrRegionNotFound
	}

	record, err := u.locationRepo.FindByRegion(ctx, r)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, service.ErrRegionNotFound
	}
	return converter.LocationToResponse(record), nil
}

func (u *landingUsecase) MountView(ctx context.Context, region string) (*dto.ViewResponse, error) {
	r := u.defaultRegion
	if region != "" {
		parsed, err := entity.ParseRegion(region)
		if err != nil {
			return nil, ErrInvalidRegion
		}
		r = parsed
	}

	view, err := u.registry.Mount(ctx, r)
	if err != nil {
		u.log.Warnf("Failed to mount view on region %s: %+v", r, err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"view_id": view.ID(), "region": r}).Info("View mounted")
	return converter.SnapshotToResponse(view.Snapshot()), nil
}

func (u *landingUsecase) GetView(ctx context.Context, viewID uuid.UUID) (*dto.ViewResponse, error) {
	view, err := u.registry.Get(ctx, viewID)
	if err != nil {
		return nil, err
	}
	return converter.SnapshotToResponse(view.Snapshot()), nil
}

func (u *landingUsecase) UnmountView(ctx context.Context, viewID uuid.UUID) error {
	if err := u.registry.Unmount(ctx, viewID); err != nil {
		return err
	}
	u.log.WithField("view_id", viewID).Info("View unmounted")
	return nil
}

func (u *landingUsecase) SelectRegion(ctx context.Context, viewID uuid.UUID, region string) (*dto.ViewResponse, error) {
	r, err := entity.ParseRegion(region)
	if err != nil {
		return nil, ErrInvalidRegion
	}

	view, err := u.registry.Get(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if err := u.registry.SelectRegion(ctx, view, r); err != nil {
		return nil, err
	}
	return converter.SnapshotToResponse(view.Snapshot()), nil
}

func (u *landingUsecase) MoveServices(ctx context.Context, viewID uuid.UUID, dir Direction) (*dto.ViewResponse, error) {
	return u.update(ctx, viewID, func(view *service.PageView) error {
		if dir == Prev {
			view.PrevService()
		} else {
			view.NextService()
		}
		return nil
	})
}

func (u *landingUsecase) JumpService(ctx context.Context, viewID uuid.UUID, index int) (*dto.ViewResponse, error) {
	return u.update(ctx, viewID, func(view *service.PageView) error {
		return view.JumpService(index)
	})
}

func (u *landingUsecase) MoveTestimonials(ctx context.Context, viewID uuid.UUID, dir Direction) (*dto.ViewResponse, error) {
	return u.update(ctx, viewID, func(view *service.PageView) error {
		if dir == Prev {
			view.PrevTestimonial()
		} else {
			view.NextTestimonial()
		}
		return nil
	})
}

func (u *landingUsecase) JumpTestimonial(ctx context.Context, viewID uuid.UUID, index int) (*dto.ViewResponse, error) {
	return u.update(ctx, viewID, func(view *service.PageView) error {
		return view.JumpTestimonial(index)
	})
}

// GetLinks returns the outbound links for the view's region. WhatsApp is left
// empty when the region has none configured.
func (u *landingUsecase) GetLinks(ctx context.Context, viewID uuid.UUID) (*dto.LinksResponse, error) {
	view, err := u.registry.Get(ctx, viewID)
	if err != nil {
		return nil, err
	}

	location := view.Snapshot().Location
	return &dto.LinksResponse{
		WhatsApp:  location.WhatsApp,
		Instagram: location.InstagramURL(),
	}, nil
}

func (u *landingUsecase) update(ctx context.Context, viewID uuid.UUID, fn func(view *service.PageView) error) (*dto.ViewResponse, error) {
	view, err := u.registry.Get(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if err := fn(view); err != nil {
		if errors.Is(err, carousel.ErrIndexOutOfRange) {
			return nil, ErrInvalidIndex
		}
		return nil, err
	}

	u.registry.Persist(ctx, view)
	return converter.SnapshotToResponse(view.Snapshot()), nil
}
