package lead

import (
	"context"
	"errors"
	"fmt"
	"log"

	"aerotours/internal/domain"

	"gorm.io/gorm"
)

type LeadStore interface {
	Create(ctx context.Context, lead *domain.ContactRequest) error
}

type DestinationResolver interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Destination, error)
	GetActive(ctx context.Context) ([]domain.Destination, error)
}

type TourResolver interface {
	GetBySlug(ctx context.Context, slug string) (*domain.AirTour, error)
	GetActive(ctx context.Context) ([]domain.AirTour, error)
}

// Notifier delivers the raw submission to the notification endpoint.
// Dispatch is best-effort: the service only logs a failure.
type Notifier interface {
	Notify(payload NotifyPayload) error
}

// NotifyPayload is the raw form payload plus the transient display price
// from a pricing-tier deep link. This is exactly what the notification
// endpoint receives.
type NotifyPayload struct {
	FormState
	PreSelectedPrice string `json:"preSelectedPrice,omitempty"`
}

type Service struct {
	leads        LeadStore
	destinations DestinationResolver
	tours        TourResolver
	notifier     Notifier
}

func NewService(leads LeadStore, destinations DestinationResolver, tours TourResolver, notifier Notifier) *Service {
	return &Service{
		leads:        leads,
		destinations: destinations,
		tours:        tours,
		notifier:     notifier,
	}
}

// Submit validates the form, persists the normalized lead and fires the
// detached notification. Either the row is created or an error is
// returned and nothing is recorded; the notification outcome never
// affects the result.
func (s *Service) Submit(ctx context.Context, form FormState, preSelectedPrice string) (*domain.ContactRequest, error) {
	// Re-applying the service type enforces branch clearing even if a
	// client sent stale fields from a previous selection.
	form = form.WithServiceType(form.ServiceType)

	if problems := form.Validate(); problems != nil {
		return nil, &ValidationError{Fields: problems}
	}

	lead, err := s.buildLead(ctx, form)
	if err != nil {
		return nil, err
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		log.Printf("lead insert failed: %v", err)
		return nil, ErrPersistence
	}

	log.Printf("analytics event=form_submission type=%s lead_id=%d", form.FormType(), lead.ID)

	s.dispatchNotification(NotifyPayload{FormState: form, PreSelectedPrice: preSelectedPrice})

	return lead, nil
}

// buildLead turns a validated form into the persisted record: conditional
// fields of the inactive branch are explicit nulls, dates move to their
// neutral storage form, slugs resolve to foreign keys where possible.
func (s *Service) buildLead(ctx context.Context, form FormState) (*domain.ContactRequest, error) {
	lead := &domain.ContactRequest{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		ServiceType: domain.ServiceType(form.ServiceType),
		Message:     form.Message,
		Status:      domain.LeadPending,
	}

	if form.ServiceType == "" {
		return lead, nil
	}

	travelDate, err := domain.ParseDate(form.TravelDate)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"travel_date": codeInvalidDate}}
	}
	lead.TravelDate = &travelDate
	lead.DepartureTime = strPtr(form.DepartureTime)

	switch domain.ServiceType(form.ServiceType) {
	case domain.ServiceCharter:
		lead.DepartureLocation = strPtr(form.DepartureLocation)
		lead.DepartureLocationOther = strPtr(form.DepartureLocationOther)
		lead.Destination = strPtr(form.Destination)
		lead.DestinationOther = strPtr(form.DestinationOther)
		lead.AircraftSelected = strPtr(form.AircraftSelected)
		lead.ReturnTime = strPtr(form.ReturnTime)

		if form.ReturnDate != "" {
			returnDate, err := domain.ParseDate(form.ReturnDate)
			if err != nil {
				return nil, &ValidationError{Fields: map[string]string{"return_date": codeInvalidDate}}
			}
			lead.ReturnDate = &returnDate
		}

		if form.Destination != "" && form.Destination != domain.OtherChoice {
			lead.DestinationID = s.resolveDestination(ctx, form.Destination)
		}

	case domain.ServiceTour:
		lead.Tour = strPtr(form.Tour)
		passengers := form.NumberOfPassengers
		lead.NumberOfPassengers = &passengers

		if form.Tour != "" {
			lead.TourID = s.resolveTour(ctx, form.Tour)
		}
	}

	return lead, nil
}

// resolveDestination maps a slug to its id. A miss is silent: the lead
// keeps the raw slug and the foreign key stays null.
func (s *Service) resolveDestination(ctx context.Context, slug string) *int64 {
	d, err := s.destinations.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("destination lookup failed for %q: %v", slug, err)
		}
		return nil
	}
	return &d.ID
}

func (s *Service) resolveTour(ctx context.Context, slug string) *int64 {
	t, err := s.tours.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("tour lookup failed for %q: %v", slug, err)
		}
		return nil
	}
	return &t.ID
}

// dispatchNotification hands the payload to the notifier on a detached
// goroutine. The result is only ever logged.
func (s *Service) dispatchNotification(payload NotifyPayload) {
	if s.notifier == nil {
		return
	}
	go func() {
		if err := s.notifier.Notify(payload); err != nil {
			log.Printf("lead notification dispatch failed: %v", err)
		}
	}()
}

/* ---------- PREFILL ---------- */

// CatalogOption is a slug + localized name pair for the form selectors.
type CatalogOption struct {
	Slug   string `json:"slug"`
	NameEs string `json:"name_es"`
	NameEn string `json:"name_en"`
}

// PrefillContext describes how the form page should initialize when
// reached through a "book this" deep link. Locked means the service type
// and the corresponding catalog selector are read-only.
type PrefillContext struct {
	ServiceType  string         `json:"service_type,omitempty"`
	Locked       bool           `json:"locked"`
	Destination  *CatalogOption `json:"destination,omitempty"`
	Tour         *CatalogOption `json:"tour,omitempty"`
	Aircraft     string         `json:"aircraft,omitempty"`
	DisplayPrice string         `json:"display_price,omitempty"`
}

// BuildPrefill resolves the deep-link query parameters. Unknown slugs
// fall back to an unlocked default context.
func (s *Service) BuildPrefill(ctx context.Context, destinationSlug, tourSlug, aircraft, price string) (*PrefillContext, error) {
	if destinationSlug != "" {
		d, err := s.destinations.GetBySlug(ctx, destinationSlug)
		if err == nil {
			pc := &PrefillContext{
				ServiceType: string(domain.ServiceCharter),
				Locked:      true,
				Destination: &CatalogOption{Slug: d.Slug, NameEs: d.NameEs, NameEn: d.NameEn},
			}
			pc.Aircraft, pc.DisplayPrice = matchTier(d.AircraftPricing, aircraft, price)
			return pc, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if tourSlug != "" {
		t, err := s.tours.GetBySlug(ctx, tourSlug)
		if err == nil {
			pc := &PrefillContext{
				ServiceType: string(domain.ServiceTour),
				Locked:      true,
				Tour:        &CatalogOption{Slug: t.Slug, NameEs: t.NameEs, NameEn: t.NameEn},
			}
			pc.Aircraft, pc.DisplayPrice = matchTier(t.AircraftPricing, aircraft, price)
			return pc, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return &PrefillContext{}, nil
}

// matchTier prefers the catalog's own price for a known aircraft tier and
// echoes the deep link's price parameter otherwise.
func matchTier(tiers domain.AircraftPricing, aircraft, price string) (string, string) {
	if aircraft == "" {
		return "", ""
	}
	for _, tier := range tiers {
		if tier.Aircraft == aircraft {
			return aircraft, fmt.Sprintf("$%.0f USD", tier.Price)
		}
	}
	return aircraft, price
}

/* ---------- FORM OPTIONS ---------- */

// FormOptions carries everything the form needs to render its selectors.
type FormOptions struct {
	DepartureLocations []string        `json:"departure_locations"`
	DepartureTimeSlots []string        `json:"departure_time_slots"`
	Destinations       []CatalogOption `json:"destinations"`
	Tours              []CatalogOption `json:"tours"`
}

func (s *Service) GetFormOptions(ctx context.Context) (*FormOptions, error) {
	destinations, err := s.destinations.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	tours, err := s.tours.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	opts := &FormOptions{
		DepartureLocations: domain.DepartureLocations(),
		DepartureTimeSlots: domain.DepartureTimeSlots(),
		Destinations:       make([]CatalogOption, 0, len(destinations)),
		Tours:              make([]CatalogOption, 0, len(tours)),
	}
	for _, d := range destinations {
		opts.Destinations = append(opts.Destinations, CatalogOption{Slug: d.Slug, NameEs: d.NameEs, NameEn: d.NameEn})
	}
	for _, t := range tours {
		opts.Tours = append(opts.Tours, CatalogOption{Slug: t.Slug, NameEs: t.NameEs, NameEn: t.NameEn})
	}
	return opts, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
