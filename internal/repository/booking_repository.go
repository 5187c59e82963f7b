package repository

import (
	"context"
	"time"

	"github.com/sefazor/shootbook-backend/internal/models"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create kalemleri ve fotoğrafçı bağlantılarını da yazar. Fotoğrafçı kayıtlarının
// kendisi güncellenmez.
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Omit("User", "Photographers.*").Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Photographers").
		First(&b, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Photographers").
		Where("reference = ?", reference).
		First(&b).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Preload("Items")
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var list []models.Booking
	err := q.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *BookingRepository) ListForPhotographer(ctx context.Context, photographerID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Items").
		Joins("JOIN booking_photographers bp ON bp.booking_id = bookings.id").
		Where("bp.photographer_id = ?", photographerID).
		Order("bookings.date ASC, bookings.id ASC").
		Find(&list).Error
	return list, err
}

// ActiveForPhotographer iptal veya tamamlanmış olmayan, until tarihinden önce
// başlayan rezervasyonlar
func (r *BookingRepository) ActiveForPhotographer(ctx context.Context, photographerID uint, until time.Time) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN booking_photographers bp ON bp.booking_id = bookings.id").
		Where("bp.photographer_id = ?", photographerID).
		Where("bookings.status NOT IN ?", []models.BookingStatus{models.BookingStatusCancelled, models.BookingStatusCompleted}).
		Where("bookings.date <= ?", until).
		Find(&list).Error
	return list, err
}

// ActiveWithEquipment ekipmanı kiralayan aktif rezervasyonlar, Items sadece o
// ekipmanın kalemini içerir
func (r *BookingRepository) ActiveWithEquipment(ctx context.Context, equipmentID uint, until time.Time) ([]models.Booking, error) {
	var list []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Items", "kind = ? AND ref_id = ?", "equipment", equipmentID).
		Where("bookings.id IN (?)", r.db.Model(&models.BookingItem{}).
			Select("booking_id").
			Where("kind = ? AND ref_id = ?", "equipment", equipmentID)).
		Where("bookings.status NOT IN ?", []models.BookingStatus{models.BookingStatusCancelled, models.BookingStatusCompleted}).
		Where("bookings.date <= ?", until).
		Find(&list).Error
	return list, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) SetStripeSession(ctx context.Context, id uint, sessionID string) error {
	return r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("stripe_session_id", sessionID).Error
}
