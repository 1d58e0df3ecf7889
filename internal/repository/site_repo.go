package repository

import (
	"context"
	"errors"

	"aerotours/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* ---------- IMAGES ---------- */

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// GetBySection returns active images for one page section, in display
// order. An empty section returns all active images.
func (r *ImageRepository) GetBySection(ctx context.Context, section string) ([]domain.SiteImage, error) {
	var images []domain.SiteImage
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if section != "" {
		q = q.Where("section = ?", section)
	}
	err := q.Order("display_order ASC").Find(&images).Error
	return images, err
}

func (r *ImageRepository) GetAll(ctx context.Context) ([]domain.SiteImage, error) {
	var images []domain.SiteImage
	err := r.db.WithContext(ctx).
		Order("section ASC, display_order ASC").
		Find(&images).Error
	return images, err
}

func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*domain.SiteImage, error) {
	var image domain.SiteImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) Create(ctx context.Context, img *domain.SiteImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *ImageRepository) Update(ctx context.Context, img *domain.SiteImage) error {
	return r.db.WithContext(ctx).Save(img).Error
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.SiteImage{}, id).Error
}

/* ---------- CONTACT INFO ---------- */

type ContactInfoRepository struct {
	db *gorm.DB
}

func NewContactInfoRepository(db *gorm.DB) *ContactInfoRepository {
	return &ContactInfoRepository{db: db}
}

// Get returns the single contact-info row, or nil when none exists yet.
func (r *ContactInfoRepository) Get(ctx context.Context) (*domain.ContactInfo, error) {
	var info domain.ContactInfo
	err := r.db.WithContext(ctx).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Upsert creates the row on first save and overwrites it afterwards.
func (r *ContactInfoRepository) Upsert(ctx context.Context, info *domain.ContactInfo) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		info.ID = existing.ID
	}
	return r.db.WithContext(ctx).Save(info).Error
}

/* ---------- SETTINGS ---------- */

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) GetAll(ctx context.Context) ([]domain.Setting, error) {
	var settings []domain.Setting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&domain.Setting{Key: key, Value: value}).Error
}
