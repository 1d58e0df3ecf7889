package repository

import (
	"context"

	"aerotours/internal/domain"

	"gorm.io/gorm"
)

// LeadFilters narrows the admin messages list.
type LeadFilters struct {
	Status string
	Limit  int
	Offset int
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.ContactRequest) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// List returns leads newest-first, optionally filtered by status.
func (r *LeadRepository) List(ctx context.Context, f LeadFilters) ([]domain.ContactRequest, int64, error) {
	var leads []domain.ContactRequest
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.ContactRequest{})
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Order("created_at DESC").Find(&leads).Error
	return leads, total, err
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	var lead domain.ContactRequest
	err := r.db.WithContext(ctx).First(&lead, id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.ContactRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.ContactRequest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
