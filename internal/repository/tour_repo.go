package repository

import (
	"context"

	"aerotours/internal/domain"

	"gorm.io/gorm"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) GetActive(ctx context.Context) ([]domain.AirTour, error) {
	var tours []domain.AirTour
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&tours).Error
	return tours, err
}

func (r *TourRepository) GetAll(ctx context.Context) ([]domain.AirTour, error) {
	var tours []domain.AirTour
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&tours).Error
	return tours, err
}

func (r *TourRepository) GetBySlug(ctx context.Context, slug string) (*domain.AirTour, error) {
	var tour domain.AirTour
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&tour).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*domain.AirTour, error) {
	var tour domain.AirTour
	err := r.db.WithContext(ctx).First(&tour, id).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) Create(ctx context.Context, t *domain.AirTour) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TourRepository) Update(ctx context.Context, t *domain.AirTour) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TourRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.AirTour{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *TourRepository) UpdateDisplayOrder(ctx context.Context, id int64, order int) error {
	return r.db.WithContext(ctx).
		Model(&domain.AirTour{}).
		Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *TourRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.AirTour{}, id).Error
}
