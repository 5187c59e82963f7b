package repository

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *models.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*models.Equipment, error) {
	var e models.Equipment
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

// List kategori boşsa tümünü döndürür
func (r *EquipmentRepository) List(ctx context.Context, category string, activeOnly bool) ([]models.Equipment, error) {
	q := r.db.WithContext(ctx).Order("category ASC, name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var list []models.Equipment
	err := q.Find(&list).Error
	return list, err
}

func (r *EquipmentRepository) Update(ctx context.Context, e *models.Equipment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Equipment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) LockForBooking(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var locked []models.Equipment
	return forUpdate(r.db.WithContext(ctx), ids).Find(&locked).Error
}
