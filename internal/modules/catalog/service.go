package catalog

import (
	"context"

	"aerotours/internal/domain"
	"aerotours/internal/repository"
)

// DestinationView / TourView wrap a catalog record with its derived
// display values.
type DestinationView struct {
	domain.Destination
	Display DisplayInfo `json:"display"`
}

type TourView struct {
	domain.AirTour
	Display DisplayInfo `json:"display"`
}

type ServiceCardView struct {
	domain.SiteService
	ResolvedIcon domain.ServiceIcon `json:"resolved_icon"`
}

type Service struct {
	destinations *repository.DestinationRepository
	tours        *repository.TourRepository
	services     *repository.ServiceRepository
	images       *repository.ImageRepository
	contactInfo  *repository.ContactInfoRepository
}

func NewService(
	destinations *repository.DestinationRepository,
	tours *repository.TourRepository,
	services *repository.ServiceRepository,
	images *repository.ImageRepository,
	contactInfo *repository.ContactInfoRepository,
) *Service {
	return &Service{
		destinations: destinations,
		tours:        tours,
		services:     services,
		images:       images,
		contactInfo:  contactInfo,
	}
}

func (s *Service) ListDestinations(ctx context.Context) ([]DestinationView, error) {
	destinations, err := s.destinations.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]DestinationView, 0, len(destinations))
	for _, d := range destinations {
		views = append(views, DestinationView{
			Destination: d,
			Display:     displayFor(d.AircraftPricing, d.PriceFrom, d.Gallery),
		})
	}
	return views, nil
}

func (s *Service) GetDestination(ctx context.Context, slug string) (*DestinationView, error) {
	d, err := s.destinations.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &DestinationView{
		Destination: *d,
		Display:     displayFor(d.AircraftPricing, d.PriceFrom, d.Gallery),
	}, nil
}

func (s *Service) ListTours(ctx context.Context) ([]TourView, error) {
	tours, err := s.tours.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TourView, 0, len(tours))
	for _, t := range tours {
		views = append(views, TourView{
			AirTour: t,
			Display: displayFor(t.AircraftPricing, t.PriceFrom, t.Gallery),
		})
	}
	return views, nil
}

func (s *Service) GetTour(ctx context.Context, slug string) (*TourView, error) {
	t, err := s.tours.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &TourView{
		AirTour: *t,
		Display: displayFor(t.AircraftPricing, t.PriceFrom, t.Gallery),
	}, nil
}

func (s *Service) ListServices(ctx context.Context) ([]ServiceCardView, error) {
	services, err := s.services.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ServiceCardView, 0, len(services))
	for _, svc := range services {
		views = append(views, ServiceCardView{
			SiteService:  svc,
			ResolvedIcon: domain.ResolveServiceIcon(svc.Icon),
		})
	}
	return views, nil
}

func (s *Service) ListImages(ctx context.Context, section string) ([]domain.SiteImage, error) {
	return s.images.GetBySection(ctx, section)
}

func (s *Service) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	return s.contactInfo.Get(ctx)
}
