package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestGormStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&CartRecord{}))
	return NewGormStore(db, zap.NewNop()), db
}

func TestGormStore_LoadMissingReturnsEmptyCart(t *testing.T) {
	store, _ := newTestGormStore(t)

	cart, err := store.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, TypeFull, cart.Type)
	assert.Empty(t, cart.Items)
}

func TestGormStore_SaveAndRestore(t *testing.T) {
	store, _ := newTestGormStore(t)
	ctx := context.Background()

	cart := NewCart()
	cart.SetType(TypeEquipment)
	cart.SetLocation(4, "Harbour")
	require.NoError(t, cart.AddItem(camera(2)))
	cart.SetRentalDays(2)
	cart.Next()
	require.NoError(t, store.Save(ctx, "user-1", cart))

	// ikinci kayıt upsert olmalı
	require.NoError(t, cart.AddItem(camera(1)))
	require.NoError(t, store.Save(ctx, "user-1", cart))

	restored, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, TypeEquipment, restored.Type)
	assert.Equal(t, uint(4), restored.LocationID)
	assert.Equal(t, StepEquipment, restored.CurrentStep())
	assert.Equal(t, 300.0, restored.Total())

	other, err := store.Load(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestGormStore_CorruptPayloadFallsBackToEmptyCart(t *testing.T) {
	store, db := newTestGormStore(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&CartRecord{CartKey: storageKey("user-1"), Payload: "{not json"}).Error)

	cart, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, NewCart().Type, cart.Type)
	assert.Empty(t, cart.Items)
}

func TestGormStore_Clear(t *testing.T) {
	store, _ := newTestGormStore(t)
	ctx := context.Background()

	cart := NewCart()
	require.NoError(t, cart.AddItem(camera(1)))
	require.NoError(t, store.Save(ctx, "user-1", cart))
	require.NoError(t, store.Clear(ctx, "user-1"))

	restored, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, restored.Items)
}

func TestDecodeCart_RepairsOutOfRangeState(t *testing.T) {
	cart := decodeCart(zap.NewNop(), "u", []byte(`{"type":"bogus","rental_days":0,"step_index":42}`))

	assert.Equal(t, TypeFull, cart.Type)
	assert.Equal(t, 1, cart.RentalDays)
	assert.Equal(t, StepReview, cart.CurrentStep())
	assert.NotNil(t, cart.Items)
}

func TestGormStore_UpdateRetriesAfterConcurrentWrite(t *testing.T) {
	for _, existing := range []bool{true, false} {
		store, _ := newTestGormStore(t)
		ctx := context.Background()
		if existing {
			require.NoError(t, store.Save(ctx, "user-1", NewCart()))
		}

		calls := 0
		cart, err := store.Update(ctx, "user-1", func(c *Cart) error {
			calls++
			if calls == 1 {
				// okuma ile yazma arasında başka bir istek sepeti kaydeder
				other := NewCart()
				other.SetLocation(4, "Harbour")
				require.NoError(t, store.Save(ctx, "user-1", other))
			}
			return c.AddItem(camera(1))
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls, "existing=%v", existing)
		assert.Equal(t, uint(4), cart.LocationID)
		assert.Len(t, cart.Items, 1)

		restored, err := store.Load(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, uint(4), restored.LocationID, "concurrent write is not lost")
		assert.Len(t, restored.Items, 1)
	}
}

func TestGormStore_UpdateReturnsCallbackError(t *testing.T) {
	store, _ := newTestGormStore(t)
	ctx := context.Background()
	errRejected := errors.New("rejected")

	_, err := store.Update(ctx, "user-1", func(c *Cart) error {
		c.SetLocation(9, "Pier")
		return errRejected
	})
	assert.ErrorIs(t, err, errRejected)

	restored, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, restored.LocationID)
}
