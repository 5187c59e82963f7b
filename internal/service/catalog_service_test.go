package service

import (
	"context"
	"testing"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	inactive := false

	loc, err := env.catalog.CreateLocation(ctx, models.LocationRequest{Name: " Ephesus ", City: "Izmir"})
	require.NoError(t, err)
	assert.Equal(t, "Ephesus", loc.Name)
	assert.True(t, loc.IsActive)

	_, err = env.catalog.CreateLocation(ctx, models.LocationRequest{Name: "Ephesus"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.catalog.CreateLocation(ctx, models.LocationRequest{Name: "Closed", IsActive: &inactive})
	require.NoError(t, err)
	public, err := env.catalog.ListLocations(ctx, false)
	require.NoError(t, err)
	assert.Len(t, public, 1)
	all, err := env.catalog.ListLocations(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := env.catalog.UpdateLocation(ctx, loc.ID, models.LocationRequest{Name: "Ephesus", City: "Selcuk"})
	require.NoError(t, err)
	assert.Equal(t, "Selcuk", updated.City)

	e, err := env.catalog.CreateEquipment(ctx, models.EquipmentRequest{Name: "Gimbal", Category: " Stabilizer", DailyRate: 25, Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, "stabilizer", e.Category)
	e, err = env.catalog.UpdateEquipment(ctx, e.ID, models.EquipmentRequest{Name: "Gimbal", DailyRate: 30, Stock: 3, IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, e.IsActive)
	visible, err := env.catalog.ListEquipment(ctx, "", false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	tr, err := env.catalog.CreateTransport(ctx, models.TransportRequest{Name: "Minibus", Capacity: 14, DailyRate: 180})
	require.NoError(t, err)
	require.NoError(t, env.catalog.DeleteTransport(ctx, tr.ID))
	assert.ErrorIs(t, env.catalog.DeleteTransport(ctx, tr.ID), ErrNotFound)
	_, err = env.catalog.GetTransport(ctx, tr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, env.catalog.DeleteLocation(ctx, 999), ErrNotFound)
	assert.ErrorIs(t, env.catalog.DeleteEquipment(ctx, 999), ErrNotFound)
}
