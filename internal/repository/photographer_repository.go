package repository

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"gorm.io/gorm"
)

type PhotographerRepository struct {
	db *gorm.DB
}

func NewPhotographerRepository(db *gorm.DB) *PhotographerRepository {
	return &PhotographerRepository{db: db}
}

func (r *PhotographerRepository) GetByID(ctx context.Context, id uint) (*models.Photographer, error) {
	var p models.Photographer
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Portfolio", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&p, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PhotographerRepository) GetByUserID(ctx context.Context, userID uint) (*models.Photographer, error) {
	var p models.Photographer
	if err := r.db.WithContext(ctx).Preload("Location").Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// List aktif fotoğrafçıları filtreler. Tarih verilirse o gün bloklu olanlar çıkarılır.
func (r *PhotographerRepository) List(ctx context.Context, f models.PhotographerFilter) ([]models.Photographer, error) {
	q := r.db.WithContext(ctx).Model(&models.Photographer{}).Preload("Location").Where("is_active = ?", true)

	if f.Specialty != "" {
		q = q.Where("specialty = ?", f.Specialty)
	}
	if f.LocationID != 0 {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.Grade != "" {
		q = q.Where("grade = ?", f.Grade)
	}
	if f.Date != nil {
		blocked := r.db.Model(&models.Availability{}).
			Select("photographer_id").
			Where("date = ?", f.Date.Format(models.DateLayout))
		q = q.Where("id NOT IN (?)", blocked)
	}

	var list []models.Photographer
	err := q.Order("grade ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *PhotographerRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Photographer, error) {
	var list []models.Photographer
	if len(ids) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *PhotographerRepository) Update(ctx context.Context, p *models.Photographer) error {
	return r.db.WithContext(ctx).Omit("Location", "Portfolio").Save(p).Error
}

func (r *PhotographerRepository) UpdateGrade(ctx context.Context, id uint, grade models.Grade) error {
	res := r.db.WithContext(ctx).Model(&models.Photographer{}).Where("id = ?", id).Update("grade", grade)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LockForBooking transaction sonuna kadar fotoğrafçı satırlarını kilitler
func (r *PhotographerRepository) LockForBooking(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var locked []models.Photographer
	return forUpdate(r.db.WithContext(ctx), ids).Find(&locked).Error
}
