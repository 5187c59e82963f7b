package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedPhotographer(t *testing.T, db *gorm.DB, email string, p models.Photographer) *models.Photographer {
	t.Helper()
	users := NewUserRepository(db)
	u := &models.User{FullName: p.DisplayName, Email: email, Password: "x", Role: models.RolePhotographer}
	require.NoError(t, users.CreateWithPhotographer(context.Background(), u, &p))
	return u.Photographer
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &models.User{FullName: "Ada", Email: "ada@example.com", Password: "hash", Role: models.RoleCustomer}
	require.NoError(t, repo.Create(ctx, u))

	exists, err := repo.EmailExists(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "newhash"))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", got.Password)
	assert.Nil(t, got.Photographer)

	dup := &models.User{FullName: "Ada 2", Email: "ada@example.com", Password: "hash"}
	assert.Error(t, repo.Create(ctx, dup))
}

func TestPhotographerRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPhotographerRepository(db)
	avail := NewAvailabilityRepository(db)

	loc := &models.Location{Name: "Cappadocia"}
	require.NoError(t, NewLocationRepository(db).Create(ctx, loc))

	a := seedPhotographer(t, db, "a@example.com", models.Photographer{DisplayName: "A", Specialty: models.SpecialtyPhotographer, Grade: models.GradeA, LocationID: &loc.ID, IsActive: true})
	b := seedPhotographer(t, db, "b@example.com", models.Photographer{DisplayName: "B", Specialty: models.SpecialtyVideographer, Grade: models.GradeB, IsActive: true})

	all, err := repo.List(ctx, models.PhotographerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	videographers, err := repo.List(ctx, models.PhotographerFilter{Specialty: models.SpecialtyVideographer})
	require.NoError(t, err)
	require.Len(t, videographers, 1)
	assert.Equal(t, b.ID, videographers[0].ID)

	byLocation, err := repo.List(ctx, models.PhotographerFilter{LocationID: loc.ID})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, a.ID, byLocation[0].ID)
	require.NotNil(t, byLocation[0].Location)
	assert.Equal(t, "Cappadocia", byLocation[0].Location.Name)

	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, avail.Block(ctx, a.ID, []string{"2026-06-01"}, "wedding"))
	require.NoError(t, avail.Block(ctx, a.ID, []string{"2026-06-01"}, "again"))

	free, err := repo.List(ctx, models.PhotographerFilter{Date: &day})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, b.ID, free[0].ID)

	require.NoError(t, repo.UpdateGrade(ctx, b.ID, models.GradeE))
	assert.ErrorIs(t, repo.UpdateGrade(ctx, 9999, models.GradeE), ErrNotFound)
}

func TestAvailabilityRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAvailabilityRepository(db)
	p := seedPhotographer(t, db, "p@example.com", models.Photographer{DisplayName: "P", IsActive: true})

	require.NoError(t, repo.Block(ctx, p.ID, []string{"2026-06-03", "2026-06-01", "2026-07-01"}, ""))

	june, err := repo.ListRange(ctx, p.ID, "2026-06-01", "2026-06-30")
	require.NoError(t, err)
	require.Len(t, june, 2)
	assert.Equal(t, "2026-06-01", june[0].Date)

	blocked, err := repo.IsBlocked(ctx, p.ID, "2026-06-03")
	require.NoError(t, err)
	assert.True(t, blocked)

	n, err := repo.Unblock(ctx, p.ID, []string{"2026-06-03", "2026-06-04"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	blocked, err = repo.IsBlocked(ctx, p.ID, "2026-06-03")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestPortfolioRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPortfolioRepository(db)
	p := seedPhotographer(t, db, "p@example.com", models.Photographer{DisplayName: "P", IsActive: true})

	img := &models.PortfolioImage{
		PhotographerID: p.ID,
		FileName:       "sunset.jpg",
		FileSize:       1024,
		MimeType:       "image/jpeg",
		R2Key:          "portfolio/1/sunset.jpg",
		ImageID:        "cf-1",
		Variants:       []string{"https://imagedelivery.net/h/cf-1/public", "https://imagedelivery.net/h/cf-1/thumbnail"},
	}
	require.NoError(t, repo.Create(ctx, img))

	list, err := repo.ListByPhotographer(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, img.Variants, list[0].Variants)

	count, err := repo.CountByPhotographer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, img.ID))
	_, err = repo.GetByID(ctx, img.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepositories(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	locations := NewLocationRepository(db)
	require.NoError(t, locations.Create(ctx, &models.Location{Name: "Istanbul", IsActive: true}))
	hidden := &models.Location{Name: "Closed beach", IsActive: true}
	require.NoError(t, locations.Create(ctx, hidden))
	hidden.IsActive = false
	require.NoError(t, locations.Update(ctx, hidden))

	active, err := locations.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Istanbul", active[0].Name)

	taken, err := locations.NameExists(ctx, "Istanbul", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = locations.NameExists(ctx, "Istanbul", active[0].ID)
	require.NoError(t, err)
	assert.False(t, taken)

	equipment := NewEquipmentRepository(db)
	require.NoError(t, equipment.Create(ctx, &models.Equipment{Name: "Drone", Category: "aerial", DailyRate: 80, Stock: 2, IsActive: true}))
	require.NoError(t, equipment.Create(ctx, &models.Equipment{Name: "Softbox", Category: "lighting", DailyRate: 15, Stock: 4, IsActive: true}))
	lighting, err := equipment.List(ctx, "lighting", true)
	require.NoError(t, err)
	require.Len(t, lighting, 1)
	assert.Equal(t, "Softbox", lighting[0].Name)

	transport := NewTransportRepository(db)
	van := &models.Transport{Name: "Van", VehicleType: "van", Capacity: 8, DailyRate: 120, IsActive: true}
	require.NoError(t, transport.Create(ctx, van))
	require.NoError(t, transport.Delete(ctx, van.ID))
	assert.ErrorIs(t, transport.Delete(ctx, van.ID), ErrNotFound)
}

func TestBookingRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepository(db)

	customer := &models.User{FullName: "C", Email: "c@example.com", Password: "x"}
	require.NoError(t, NewUserRepository(db).Create(ctx, customer))
	p := seedPhotographer(t, db, "p@example.com", models.Photographer{DisplayName: "P", DailyRate: 100, IsActive: true})

	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	b := &models.Booking{
		Reference:     "ref-1",
		UserID:        customer.ID,
		Type:          "full",
		LocationID:    1,
		Date:          date,
		RentalDays:    2,
		TotalCost:     200,
		Status:        models.BookingStatusPending,
		Photographers: []models.Photographer{*p},
		Items: []models.BookingItem{
			{Kind: "photographer", RefID: p.ID, Name: "P", DailyRate: 100, Quantity: 1, Subtotal: 200},
		},
	}
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	require.Len(t, got.Photographers, 1)
	assert.Equal(t, p.ID, got.Photographers[0].ID)

	mine, err := repo.ListForPhotographer(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	active, err := repo.ActiveForPhotographer(ctx, p.ID, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, active, 1)

	require.NoError(t, repo.UpdateStatus(ctx, b.ID, models.BookingStatusCancelled))
	active, err = repo.ActiveForPhotographer(ctx, p.ID, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, active)

	pending, err := repo.List(ctx, models.BookingFilter{Status: models.BookingStatusPending})
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, repo.SetStripeSession(ctx, b.ID, "cs_1"))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, 999, models.BookingStatusPaid), ErrNotFound)
}

func TestNotificationRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)

	require.NoError(t, repo.Create(ctx,
		&models.Notification{UserID: 1, Type: models.NotificationBookingCreated, Title: "one"},
		&models.Notification{UserID: 1, Type: models.NotificationBookingCreated, Title: "two"},
		&models.Notification{UserID: 2, Type: models.NotificationBookingCreated, Title: "other"},
	))

	unread, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	list, err := repo.List(ctx, 1, false, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = repo.MarkRead(ctx, 2, list[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.MarkRead(ctx, 1, list[0].ID)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.NotNil(t, n.ReadAt)

	onlyUnread, err := repo.List(ctx, 1, true, 0)
	require.NoError(t, err)
	assert.Len(t, onlyUnread, 1)

	marked, err := repo.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	unread, err = repo.CountUnread(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestBookingRepository_ActiveWithEquipment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepository(db)

	customer := &models.User{FullName: "C", Email: "c@example.com", Password: "x"}
	require.NoError(t, NewUserRepository(db).Create(ctx, customer))

	date := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	b := &models.Booking{
		Reference:  "ref-eq",
		UserID:     customer.ID,
		Type:       "equipment",
		LocationID: 1,
		Date:       date,
		RentalDays: 1,
		TotalCost:  110,
		Status:     models.BookingStatusPending,
		Items: []models.BookingItem{
			{Kind: "equipment", RefID: 7, Name: "Drone", DailyRate: 40, Quantity: 2, Subtotal: 80},
			{Kind: "equipment", RefID: 8, Name: "Tripod", DailyRate: 30, Quantity: 1, Subtotal: 30},
		},
	}
	require.NoError(t, repo.Create(ctx, b))

	list, err := repo.ActiveWithEquipment(ctx, 7, date)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Items, 1, "only the requested equipment line is loaded")
	assert.Equal(t, 2, list[0].Items[0].Quantity)

	list, err = repo.ActiveWithEquipment(ctx, 7, date.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, list, "bookings starting after until are skipped")

	list, err = repo.ActiveWithEquipment(ctx, 9, date)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.UpdateStatus(ctx, b.ID, models.BookingStatusCancelled))
	list, err = repo.ActiveWithEquipment(ctx, 7, date)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	customer := &models.User{FullName: "C", Email: "c@example.com", Password: "x"}
	require.NoError(t, NewUserRepository(db).Create(ctx, customer))
	p := seedPhotographer(t, db, "p@example.com", models.Photographer{DisplayName: "P", DailyRate: 100, IsActive: true})

	err := NewTransactor(db).Run(ctx, func(tx *Tx) error {
		require.NoError(t, tx.Photographers.LockForBooking(ctx, []uint{p.ID}))
		require.NoError(t, tx.Equipment.LockForBooking(ctx, nil))
		require.NoError(t, tx.Bookings.Create(ctx, &models.Booking{
			Reference:  "ref-tx",
			UserID:     customer.ID,
			Type:       "full",
			LocationID: 1,
			Date:       time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			RentalDays: 1,
			Status:     models.BookingStatusPending,
		}))
		return ErrNotFound
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewBookingRepository(db).GetByReference(ctx, "ref-tx")
	assert.ErrorIs(t, err, ErrNotFound, "booking is rolled back")
}
