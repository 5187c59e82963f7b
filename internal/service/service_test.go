package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sefazor/shootbook-backend/internal/booking"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"github.com/sefazor/shootbook-backend/pkg/bcrypt"
	"github.com/sefazor/shootbook-backend/pkg/database"
	"github.com/sefazor/shootbook-backend/pkg/email"
	"github.com/sefazor/shootbook-backend/pkg/jwt"
	"github.com/sefazor/shootbook-backend/pkg/payment"
	"github.com/sefazor/shootbook-backend/pkg/qrcode"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) record(kind, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, kind+":"+to)
	return nil
}

func (m *fakeMailer) SendWelcomeEmail(to, _ string) error { return m.record("welcome", to) }
func (m *fakeMailer) SendBookingConfirmation(to string, _ email.BookingSummary) error {
	return m.record("confirmation", to)
}
func (m *fakeMailer) SendBookingStatusChanged(to string, _ email.BookingSummary) error {
	return m.record("status", to)
}

func (m *fakeMailer) has(entry string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sent {
		if s == entry {
			return true
		}
	}
	return false
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.BookingEvent
	then   func(ctx context.Context, e models.BookingEvent) error
}

func (p *fakePublisher) Publish(ctx context.Context, e models.BookingEvent) error {
	p.mu.Lock()
	p.events = append(p.events, e)
	p.mu.Unlock()
	if p.then != nil {
		return p.then(ctx, e)
	}
	return nil
}

type fakeGateway struct {
	params payment.CheckoutParams
	event  *payment.WebhookEvent
}

func (g *fakeGateway) CreateCheckoutSession(p payment.CheckoutParams) (*payment.CheckoutResult, error) {
	g.params = p
	return &payment.CheckoutResult{SessionID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
}

func (g *fakeGateway) ParseWebhook(payload []byte, signature string) (*payment.WebhookEvent, error) {
	if signature != "valid" {
		return nil, errors.New("bad signature")
	}
	return g.event, nil
}

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func (s *fakeObjectStore) Upload(_ context.Context, key string, r io.Reader, _ string) error {
	if s.fail {
		return errors.New("upload failed")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeObjectStore) PublicURL(key string) string { return "https://cdn.test/" + key }

func (s *fakeObjectStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

type fakeImages struct {
	mu      sync.Mutex
	ids     map[string]bool
	fail    bool
	counter int
}

func (f *fakeImages) Upload(_ context.Context, r io.Reader, filename string) (string, []string, error) {
	if f.fail {
		return "", nil, errors.New("images down")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	id := "img-" + strings.Repeat("x", f.counter)
	if f.ids == nil {
		f.ids = map[string]bool{}
	}
	f.ids[id] = true
	return id, []string{"https://imagedelivery.test/" + id + "/public"}, nil
}

func (f *fakeImages) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ids, id)
	return nil
}

func (f *fakeImages) GetPublicURL(id string) string {
	return "https://imagedelivery.test/" + id + "/public"
}
func (f *fakeImages) GetThumbnailURL(id string) string {
	return "https://imagedelivery.test/" + id + "/thumbnail"
}

type testEnv struct {
	db            *gorm.DB
	mailer        *fakeMailer
	publisher     *fakePublisher
	gateway       *fakeGateway
	objects       *fakeObjectStore
	images        *fakeImages
	auth          *AuthService
	users         *UserService
	photographers *PhotographerService
	portfolio     *PortfolioService
	catalog       *CatalogService
	cart          *CartService
	bookings      *BookingService
	notifications *NotificationService
	availability  *repository.AvailabilityRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.RunMigrations(db))

	log := zap.NewNop()
	hasher := bcrypt.NewHasher(4)
	tokens := jwt.NewManager("test-secret", "shootbook-test", 0)

	userRepo := repository.NewUserRepository(db)
	photographerRepo := repository.NewPhotographerRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	transportRepo := repository.NewTransportRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	env := &testEnv{
		db:           db,
		mailer:       &fakeMailer{},
		publisher:    &fakePublisher{},
		gateway:      &fakeGateway{},
		objects:      &fakeObjectStore{},
		images:       &fakeImages{},
		availability: availabilityRepo,
	}

	env.notifications = NewNotificationService(notificationRepo, photographerRepo, log)
	env.publisher.then = env.notifications.HandleBookingEvent
	env.auth = NewAuthService(userRepo, hasher, tokens, env.mailer, log)
	env.users = NewUserService(userRepo, hasher)
	env.photographers = NewPhotographerService(photographerRepo, availabilityRepo, bookingRepo, locationRepo)
	env.portfolio = NewPortfolioService(portfolioRepo, photographerRepo, env.objects, env.images, log)
	env.catalog = NewCatalogService(locationRepo, equipmentRepo, transportRepo)
	env.cart = NewCartService(
		booking.NewGormStore(db, log),
		userRepo, locationRepo, equipmentRepo, transportRepo, photographerRepo, bookingRepo,
		repository.NewTransactor(db),
		env.photographers, env.notifications, env.publisher, env.mailer, log,
	)
	env.bookings = NewBookingService(
		bookingRepo, userRepo, photographerRepo, env.gateway,
		qrcode.NewQRService("https://shootbook.test/bookings"),
		env.publisher, env.mailer, log,
	)
	return env
}

func (e *testEnv) register(t *testing.T, name, mail string, role models.Role) *models.User {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), models.RegisterRequest{
		FullName: name,
		Email:    mail,
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return &resp.User
}

// photographer kullanıcı kaydeder ve profiline günlük ücret verir
func (e *testEnv) photographer(t *testing.T, name, mail string, specialty models.Specialty, rate float64) (*models.User, *models.Photographer) {
	t.Helper()
	u := e.register(t, name, mail, models.RolePhotographer)
	p, err := e.photographers.UpdateMine(context.Background(), u.ID, models.UpdatePhotographerRequest{
		Specialty: &specialty,
		DailyRate: &rate,
	})
	require.NoError(t, err)
	return u, p
}
