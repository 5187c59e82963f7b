package repository

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l *models.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var l models.Location
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *LocationRepository) NameExists(ctx context.Context, name string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Location{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *LocationRepository) List(ctx context.Context, activeOnly bool) ([]models.Location, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var list []models.Location
	err := q.Find(&list).Error
	return list, err
}

func (r *LocationRepository) Update(ctx context.Context, l *models.Location) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LocationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Location{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
