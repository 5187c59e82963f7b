package repository

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"gorm.io/gorm"
)

type TransportRepository struct {
	db *gorm.DB
}

func NewTransportRepository(db *gorm.DB) *TransportRepository {
	return &TransportRepository{db: db}
}

func (r *TransportRepository) Create(ctx context.Context, t *models.Transport) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransportRepository) GetByID(ctx context.Context, id uint) (*models.Transport, error) {
	var t models.Transport
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *TransportRepository) List(ctx context.Context, activeOnly bool) ([]models.Transport, error) {
	q := r.db.WithContext(ctx).Order("capacity ASC, name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var list []models.Transport
	err := q.Find(&list).Error
	return list, err
}

func (r *TransportRepository) Update(ctx context.Context, t *models.Transport) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TransportRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Transport{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
