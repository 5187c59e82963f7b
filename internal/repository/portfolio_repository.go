package repository

import (
	"context"

	"github.com/sefazor/shootbook-backend/internal/models"
	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{
		db: db,
	}
}

// Variants alanı gorm json serializer ile yazılıyor, raw SQL'e gerek yok
func (r *PortfolioRepository) Create(ctx context.Context, image *models.PortfolioImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id uint) (*models.PortfolioImage, error) {
	var image models.PortfolioImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &image, nil
}

func (r *PortfolioRepository) ListByPhotographer(ctx context.Context, photographerID uint) ([]models.PortfolioImage, error) {
	var images []models.PortfolioImage
	err := r.db.WithContext(ctx).
		Where("photographer_id = ?", photographerID).
		Order("created_at DESC, id DESC").
		Find(&images).Error
	return images, err
}

func (r *PortfolioRepository) CountByPhotographer(ctx context.Context, photographerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PortfolioImage{}).
		Where("photographer_id = ?", photographerID).
		Count(&count).Error
	return count, err
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PortfolioImage{}, id).Error
}
