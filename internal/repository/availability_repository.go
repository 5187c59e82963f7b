package repository

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Block aynı gün zaten blokluysa sessizce geçer
func (r *AvailabilityRepository) Block(ctx context.Context, photographerID uint, dates []string, note string) error {
	if len(dates) == 0 {
		return nil
	}
	rows := make([]models.Availability, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, models.Availability{PhotographerID: photographerID, Date: d, Note: note})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *AvailabilityRepository) Unblock(ctx context.Context, photographerID uint, dates []string) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("photographer_id = ? AND date IN ?", photographerID, dates).
		Delete(&models.Availability{})
	return res.RowsAffected, res.Error
}

// ListRange from ve to dahil, "2006-01-02" formatında
func (r *AvailabilityRepository) ListRange(ctx context.Context, photographerID uint, from, to string) ([]models.Availability, error) {
	var rows []models.Availability
	err := r.db.WithContext(ctx).
		Where("photographer_id = ? AND date >= ? AND date <= ?", photographerID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *AvailabilityRepository) IsBlocked(ctx context.Context, photographerID uint, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Availability{}).
		Where("photographer_id = ? AND date = ?", photographerID, date).
		Count(&count).Error
	return count > 0, err
}
