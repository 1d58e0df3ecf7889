package admin

import (
	"context"

	"aerotours/internal/domain"
	"aerotours/internal/repository"
)

type DestinationStore interface {
	GetAll(ctx context.Context) ([]domain.Destination, error)
	GetByID(ctx context.Context, id int64) (*domain.Destination, error)
	Create(ctx context.Context, d *domain.Destination) error
	Update(ctx context.Context, d *domain.Destination) error
	SetActive(ctx context.Context, id int64, active bool) error
	UpdateDisplayOrder(ctx context.Context, id int64, order int) error
	Delete(ctx context.Context, id int64) error
}

type TourStore interface {
	GetAll(ctx context.Context) ([]domain.AirTour, error)
	GetByID(ctx context.Context, id int64) (*domain.AirTour, error)
	Create(ctx context.Context, t *domain.AirTour) error
	Update(ctx context.Context, t *domain.AirTour) error
	SetActive(ctx context.Context, id int64, active bool) error
	UpdateDisplayOrder(ctx context.Context, id int64, order int) error
	Delete(ctx context.Context, id int64) error
}

type ServiceStore interface {
	GetAll(ctx context.Context) ([]domain.SiteService, error)
	GetByID(ctx context.Context, id int64) (*domain.SiteService, error)
	Create(ctx context.Context, s *domain.SiteService) error
	Update(ctx context.Context, s *domain.SiteService) error
	UpdateDisplayOrder(ctx context.Context, id int64, order int) error
	Delete(ctx context.Context, id int64) error
}

type ImageStore interface {
	GetAll(ctx context.Context) ([]domain.SiteImage, error)
	GetByID(ctx context.Context, id int64) (*domain.SiteImage, error)
	Create(ctx context.Context, img *domain.SiteImage) error
	Update(ctx context.Context, img *domain.SiteImage) error
	Delete(ctx context.Context, id int64) error
}

type LeadStore interface {
	List(ctx context.Context, f repository.LeadFilters) ([]domain.ContactRequest, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ContactRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
	Delete(ctx context.Context, id int64) error
}

type ContactInfoStore interface {
	Get(ctx context.Context) (*domain.ContactInfo, error)
	Upsert(ctx context.Context, info *domain.ContactInfo) error
}

type SettingStore interface {
	GetAll(ctx context.Context) ([]domain.Setting, error)
	Set(ctx context.Context, key, value string) error
}
