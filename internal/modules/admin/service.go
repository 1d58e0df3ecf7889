package admin

import (
	"context"
	"errors"
	"fmt"

	"aerotours/internal/domain"
	"aerotours/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	destinations DestinationStore
	tours        TourStore
	services     ServiceStore
	images       ImageStore
	leads        LeadStore
	contactInfo  ContactInfoStore
	settings     SettingStore
}

func NewService(
	destinations DestinationStore,
	tours TourStore,
	services ServiceStore,
	images ImageStore,
	leads LeadStore,
	contactInfo ContactInfoStore,
	settings SettingStore,
) *Service {
	return &Service{
		destinations: destinations,
		tours:        tours,
		services:     services,
		images:       images,
		leads:        leads,
		contactInfo:  contactInfo,
		settings:     settings,
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

/* ---------- DESTINATIONS ---------- */

func (s *Service) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.GetAll(ctx)
}

func (s *Service) CreateDestination(ctx context.Context, req CreateDestinationRequest) (*domain.Destination, error) {
	items, err := s.destinations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	d := &domain.Destination{
		Slug:              req.Slug,
		NameEs:            req.NameEs,
		NameEn:            req.NameEn,
		DescriptionEs:     req.DescriptionEs,
		DescriptionEn:     req.DescriptionEn,
		LongDescriptionEs: req.LongDescriptionEs,
		LongDescriptionEn: req.LongDescriptionEn,
		HighlightsEs:      req.HighlightsEs,
		HighlightsEn:      req.HighlightsEn,
		ImageURL:          req.ImageURL,
		Gallery:           req.Gallery,
		FlightTime:        req.FlightTime,
		PriceFrom:         req.PriceFrom,
		AircraftPricing:   req.AircraftPricing,
		IsActive:          true,
		DisplayOrder:      nextOrder(len(items)),
	}

	if err := s.destinations.Create(ctx, d); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) UpdateDestination(ctx context.Context, id int64, req UpdateDestinationRequest) (*domain.Destination, error) {
	d, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		d.Slug = *req.Slug
	}
	if req.NameEs != nil {
		d.NameEs = *req.NameEs
	}
	if req.NameEn != nil {
		d.NameEn = *req.NameEn
	}
	if req.DescriptionEs != nil {
		d.DescriptionEs = *req.DescriptionEs
	}
	if req.DescriptionEn != nil {
		d.DescriptionEn = *req.DescriptionEn
	}
	if req.LongDescriptionEs != nil {
		d.LongDescriptionEs = *req.LongDescriptionEs
	}
	if req.LongDescriptionEn != nil {
		d.LongDescriptionEn = *req.LongDescriptionEn
	}
	if req.HighlightsEs != nil {
		d.HighlightsEs = *req.HighlightsEs
	}
	if req.HighlightsEn != nil {
		d.HighlightsEn = *req.HighlightsEn
	}
	if req.ImageURL != nil {
		d.ImageURL = *req.ImageURL
	}
	if req.Gallery != nil {
		d.Gallery = *req.Gallery
	}
	if req.FlightTime != nil {
		d.FlightTime = *req.FlightTime
	}
	if req.PriceFrom != nil {
		d.PriceFrom = *req.PriceFrom
	}
	if req.AircraftPricing != nil {
		d.AircraftPricing = *req.AircraftPricing
	}

	if err := s.destinations.Update(ctx, d); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) SetDestinationActive(ctx context.Context, id int64, active bool) error {
	if _, err := s.destinations.GetByID(ctx, id); err != nil {
		return err
	}
	return s.destinations.SetActive(ctx, id, active)
}

func (s *Service) DeleteDestination(ctx context.Context, id int64) error {
	if _, err := s.destinations.GetByID(ctx, id); err != nil {
		return err
	}
	return s.destinations.Delete(ctx, id)
}

// ReorderDestination swaps the row's display_order with its neighbor in
// the given direction. The swap takes two writes; when the second fails
// the returned list is nil so callers keep their current state, while the
// backend may be left partially swapped until the next reload.
func (s *Service) ReorderDestination(ctx context.Context, id int64, direction string) ([]domain.Destination, error) {
	items, err := s.destinations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]orderedEntry, len(items))
	for i, d := range items {
		entries[i] = orderedEntry{ID: d.ID, Order: d.DisplayOrder}
	}

	changed, err := s.swapAdjacent(ctx, s.destinations.UpdateDisplayOrder, entries, id, direction)
	if err != nil {
		return nil, err
	}
	if !changed {
		return items, nil
	}
	return s.destinations.GetAll(ctx)
}

/* ---------- TOURS ---------- */

func (s *Service) ListTours(ctx context.Context) ([]domain.AirTour, error) {
	return s.tours.GetAll(ctx)
}

func (s *Service) CreateTour(ctx context.Context, req CreateTourRequest) (*domain.AirTour, error) {
	items, err := s.tours.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	t := &domain.AirTour{
		Slug:              req.Slug,
		NameEs:            req.NameEs,
		NameEn:            req.NameEn,
		DescriptionEs:     req.DescriptionEs,
		DescriptionEn:     req.DescriptionEn,
		LongDescriptionEs: req.LongDescriptionEs,
		LongDescriptionEn: req.LongDescriptionEn,
		HighlightsEs:      req.HighlightsEs,
		HighlightsEn:      req.HighlightsEn,
		ImageURL:          req.ImageURL,
		Gallery:           req.Gallery,
		DurationMinutes:   req.DurationMinutes,
		PriceFrom:         req.PriceFrom,
		AircraftPricing:   req.AircraftPricing,
		IsActive:          true,
		DisplayOrder:      nextOrder(len(items)),
	}

	if err := s.tours.Create(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateTour(ctx context.Context, id int64, req UpdateTourRequest) (*domain.AirTour, error) {
	t, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		t.Slug = *req.Slug
	}
	if req.NameEs != nil {
		t.NameEs = *req.NameEs
	}
	if req.NameEn != nil {
		t.NameEn = *req.NameEn
	}
	if req.DescriptionEs != nil {
		t.DescriptionEs = *req.DescriptionEs
	}
	if req.DescriptionEn != nil {
		t.DescriptionEn = *req.DescriptionEn
	}
	if req.LongDescriptionEs != nil {
		t.LongDescriptionEs = *req.LongDescriptionEs
	}
	if req.LongDescriptionEn != nil {
		t.LongDescriptionEn = *req.LongDescriptionEn
	}
	if req.HighlightsEs != nil {
		t.HighlightsEs = *req.HighlightsEs
	}
	if req.HighlightsEn != nil {
		t.HighlightsEn = *req.HighlightsEn
	}
	if req.ImageURL != nil {
		t.ImageURL = *req.ImageURL
	}
	if req.Gallery != nil {
		t.Gallery = *req.Gallery
	}
	if req.DurationMinutes != nil {
		t.DurationMinutes = *req.DurationMinutes
	}
	if req.PriceFrom != nil {
		t.PriceFrom = *req.PriceFrom
	}
	if req.AircraftPricing != nil {
		t.AircraftPricing = *req.AircraftPricing
	}

	if err := s.tours.Update(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) SetTourActive(ctx context.Context, id int64, active bool) error {
	if _, err := s.tours.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tours.SetActive(ctx, id, active)
}

func (s *Service) DeleteTour(ctx context.Context, id int64) error {
	if _, err := s.tours.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tours.Delete(ctx, id)
}

func (s *Service) ReorderTour(ctx context.Context, id int64, direction string) ([]domain.AirTour, error) {
	items, err := s.tours.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]orderedEntry, len(items))
	for i, t := range items {
		entries[i] = orderedEntry{ID: t.ID, Order: t.DisplayOrder}
	}

	changed, err := s.swapAdjacent(ctx, s.tours.UpdateDisplayOrder, entries, id, direction)
	if err != nil {
		return nil, err
	}
	if !changed {
		return items, nil
	}
	return s.tours.GetAll(ctx)
}

/* ---------- SERVICES ---------- */

func (s *Service) ListServices(ctx context.Context) ([]domain.SiteService, error) {
	return s.services.GetAll(ctx)
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.SiteService, error) {
	items, err := s.services.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	svc := &domain.SiteService{
		Icon:          string(domain.ResolveServiceIcon(req.Icon)),
		TitleEs:       req.TitleEs,
		TitleEn:       req.TitleEn,
		DescriptionEs: req.DescriptionEs,
		DescriptionEn: req.DescriptionEn,
		IsActive:      true,
		DisplayOrder:  nextOrder(len(items)),
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.SiteService, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Icon != nil {
		svc.Icon = string(domain.ResolveServiceIcon(*req.Icon))
	}
	if req.TitleEs != nil {
		svc.TitleEs = *req.TitleEs
	}
	if req.TitleEn != nil {
		svc.TitleEn = *req.TitleEn
	}
	if req.DescriptionEs != nil {
		svc.DescriptionEs = *req.DescriptionEs
	}
	if req.DescriptionEn != nil {
		svc.DescriptionEn = *req.DescriptionEn
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.services.GetByID(ctx, id); err != nil {
		return err
	}
	return s.services.Delete(ctx, id)
}

func (s *Service) ReorderService(ctx context.Context, id int64, direction string) ([]domain.SiteService, error) {
	items, err := s.services.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]orderedEntry, len(items))
	for i, svc := range items {
		entries[i] = orderedEntry{ID: svc.ID, Order: svc.DisplayOrder}
	}

	changed, err := s.swapAdjacent(ctx, s.services.UpdateDisplayOrder, entries, id, direction)
	if err != nil {
		return nil, err
	}
	if !changed {
		return items, nil
	}
	return s.services.GetAll(ctx)
}

/* ---------- IMAGES ---------- */

func (s *Service) ListImages(ctx context.Context) ([]domain.SiteImage, error) {
	return s.images.GetAll(ctx)
}

func (s *Service) CreateImage(ctx context.Context, req CreateImageRequest) (*domain.SiteImage, error) {
	img := &domain.SiteImage{
		Section:      req.Section,
		URL:          req.URL,
		AltEs:        req.AltEs,
		AltEn:        req.AltEn,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.images.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) UpdateImage(ctx context.Context, id int64, req UpdateImageRequest) (*domain.SiteImage, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Section != nil {
		img.Section = *req.Section
	}
	if req.URL != nil {
		img.URL = *req.URL
	}
	if req.AltEs != nil {
		img.AltEs = *req.AltEs
	}
	if req.AltEn != nil {
		img.AltEn = *req.AltEn
	}
	if req.IsActive != nil {
		img.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		img.DisplayOrder = *req.DisplayOrder
	}

	if err := s.images.Update(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, id int64) error {
	if _, err := s.images.GetByID(ctx, id); err != nil {
		return err
	}
	return s.images.Delete(ctx, id)
}

/* ---------- MESSAGES ---------- */

func (s *Service) ListLeads(ctx context.Context, f repository.LeadFilters) ([]domain.ContactRequest, int64, error) {
	return s.leads.List(ctx, f)
}

func (s *Service) GetLead(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	return s.leads.GetByID(ctx, id)
}

func (s *Service) UpdateLeadStatus(ctx context.Context, id int64, status string) error {
	parsed, ok := domain.ParseLeadStatus(status)
	if !ok {
		return ErrInvalidStatus
	}
	return s.leads.UpdateStatus(ctx, id, parsed)
}

// DeleteLead is irreversible.
func (s *Service) DeleteLead(ctx context.Context, id int64) error {
	return s.leads.Delete(ctx, id)
}

/* ---------- CONTACT INFO / SETTINGS ---------- */

func (s *Service) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	return s.contactInfo.Get(ctx)
}

func (s *Service) UpdateContactInfo(ctx context.Context, req UpdateContactInfoRequest) (*domain.ContactInfo, error) {
	info := &domain.ContactInfo{
		Phone:      req.Phone,
		WhatsApp:   req.WhatsApp,
		Email:      req.Email,
		Address:    req.Address,
		ScheduleEs: req.ScheduleEs,
		ScheduleEn: req.ScheduleEn,
	}
	if err := s.contactInfo.Upsert(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *Service) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	return s.settings.GetAll(ctx)
}

func (s *Service) SetSetting(ctx context.Context, key, value string) error {
	return s.settings.Set(ctx, key, value)
}

/* ---------- REORDER CORE ---------- */

type orderedEntry struct {
	ID    int64
	Order int
}

type orderWriter func(ctx context.Context, id int64, order int) error

// swapAdjacent exchanges display_order between the given row and its
// neighbor. Two sequential writes; a failure after the first returns
// ErrReorderIncomplete. At the list edge the swap is a no-op.
func (s *Service) swapAdjacent(ctx context.Context, write orderWriter, entries []orderedEntry, id int64, direction string) (bool, error) {
	if direction != "up" && direction != "down" {
		return false, ErrInvalidDirection
	}

	idx := -1
	for i, e := range entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, gorm.ErrRecordNotFound
	}

	neighbor := idx - 1
	if direction == "down" {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(entries) {
		return false, nil
	}

	a, b := entries[idx], entries[neighbor]

	if err := write(ctx, a.ID, b.Order); err != nil {
		return false, err
	}
	if err := write(ctx, b.ID, a.Order); err != nil {
		return false, fmt.Errorf("%w: %v", ErrReorderIncomplete, err)
	}
	return true, nil
}

// nextOrder places new rows at the end of the list.
func nextOrder(count int) int {
	return count + 1
}
