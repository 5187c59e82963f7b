package booking

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// StorageKey sepetin saklandığı sabit anahtar öneki
const StorageKey = "bookingCart"

// maxUpdateAttempts eşzamanlı yazımda Update'in kaç kez yeniden deneyeceği
const maxUpdateAttempts = 8

// ErrConcurrentUpdate sepet deneme sayısı boyunca başka bir istek tarafından değiştirildi
var ErrConcurrentUpdate = errors.New("booking cart was modified concurrently")

// Store sepeti sahibine göre saklar. Değişiklikler Update ile yapılır: fn son
// kaydedilmiş sepet üzerinde çalışır ve araya başka bir yazım girerse tekrar
// çağrılır, bu yüzden yan etkisiz olmalı.
type Store interface {
	Load(ctx context.Context, owner string) (*Cart, error)
	Save(ctx context.Context, owner string, cart *Cart) error
	Update(ctx context.Context, owner string, fn func(*Cart) error) (*Cart, error)
	Clear(ctx context.Context, owner string) error
}

func storageKey(owner string) string {
	return StorageKey + ":" + owner
}

// decodeCart bozuk kayıtlarda hata döndürmez, loglayıp boş sepetle devam eder
func decodeCart(logger *zap.Logger, owner string, raw []byte) *Cart {
	cart := NewCart()
	if len(raw) == 0 {
		return cart
	}
	if err := json.Unmarshal(raw, cart); err != nil {
		logger.Warn("discarding unreadable booking cart",
			zap.String("owner", owner),
			zap.Error(err),
		)
		return NewCart()
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	if cart.RentalDays <= 0 {
		cart.RentalDays = 1
	}
	if _, err := ParseBookingType(string(cart.Type)); err != nil {
		cart.Type = TypeFull
	}
	cart.clampStep()
	return cart
}
