package repository

import (
	"context"

	"aerotours/internal/domain"

	"gorm.io/gorm"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// GetActive returns destinations visible on the public site, in display
// order.
func (r *DestinationRepository) GetActive(ctx context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&destinations).Error
	return destinations, err
}

// GetAll returns every destination for the admin panel, in display order.
func (r *DestinationRepository) GetAll(ctx context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&destinations).Error
	return destinations, err
}

func (r *DestinationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	var destination domain.Destination
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&destination).Error
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var destination domain.Destination
	err := r.db.WithContext(ctx).First(&destination, id).Error
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DestinationRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Destination{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// UpdateDisplayOrder writes a single row's display_order. Reordering is a
// swap of two rows, issued as two separate calls.
func (r *DestinationRepository) UpdateDisplayOrder(ctx context.Context, id int64, order int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Destination{}).
		Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Destination{}, id).Error
}
