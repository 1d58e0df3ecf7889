package repository

import (
	"context"

	"aerotours/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) GetActive(ctx context.Context) ([]domain.SiteService, error) {
	var services []domain.SiteService
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.SiteService, error) {
	var services []domain.SiteService
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.SiteService, error) {
	var svc domain.SiteService
	err := r.db.WithContext(ctx).First(&svc, id).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.SiteService) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.SiteService) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) UpdateDisplayOrder(ctx context.Context, id int64, order int) error {
	return r.db.WithContext(ctx).
		Model(&domain.SiteService{}).
		Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.SiteService{}, id).Error
}
