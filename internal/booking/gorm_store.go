package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRecord Redis yapılandırılmadığında sepetin veritabanındaki karşılığı
type CartRecord struct {
	CartKey   string `gorm:"primaryKey;size:191"`
	Payload   string `gorm:"type:text;not null"`
	Version   int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (CartRecord) TableName() string {
	return "booking_carts"
}

type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormStore(db *gorm.DB, logger *zap.Logger) *GormStore {
	return &GormStore{db: db, logger: logger}
}

func (s *GormStore) Load(ctx context.Context, owner string) (*Cart, error) {
	var record CartRecord
	err := s.db.WithContext(ctx).Where("cart_key = ?", storageKey(owner)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return decodeCart(s.logger, owner, []byte(record.Payload)), nil
}

func (s *GormStore) Save(ctx context.Context, owner string, cart *Cart) error {
	_, err := s.Update(ctx, owner, func(c *Cart) error {
		*c = *cart
		return nil
	})
	return err
}

// Update version kolonu üzerinden iyimser kilitleme yapar: kayıt okunduktan
// sonra değiştiyse yazım etkisiz kalır ve fn yeni haliyle tekrar çalışır.
func (s *GormStore) Update(ctx context.Context, owner string, fn func(*Cart) error) (*Cart, error) {
	key := storageKey(owner)
	db := s.db.WithContext(ctx)

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var record CartRecord
		err := db.Where("cart_key = ?", key).First(&record).Error
		exists := true
		if errors.Is(err, gorm.ErrRecordNotFound) {
			exists = false
		} else if err != nil {
			return nil, fmt.Errorf("failed to load cart: %w", err)
		}

		cart := decodeCart(s.logger, owner, []byte(record.Payload))
		if err := fn(cart); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(cart)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cart: %w", err)
		}

		var res *gorm.DB
		if exists {
			res = db.Model(&CartRecord{}).
				Where("cart_key = ? AND version = ?", key, record.Version).
				Updates(map[string]interface{}{
					"payload":    string(raw),
					"version":    record.Version + 1,
					"updated_at": time.Now().UTC(),
				})
		} else {
			res = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&CartRecord{
				CartKey:   key,
				Payload:   string(raw),
				Version:   1,
				UpdatedAt: time.Now().UTC(),
			})
		}
		if res.Error != nil {
			return nil, fmt.Errorf("failed to save cart: %w", res.Error)
		}
		if res.RowsAffected == 1 {
			return cart, nil
		}
	}
	return nil, ErrConcurrentUpdate
}

func (s *GormStore) Clear(ctx context.Context, owner string) error {
	return s.db.WithContext(ctx).Where("cart_key = ?", storageKey(owner)).Delete(&CartRecord{}).Error
}
