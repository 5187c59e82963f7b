package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/repository"
)

// maxAvailabilityRange tek sorguda listelenebilecek gün sayısı
const maxAvailabilityRange = 366

type PhotographerService struct {
	photographerRepo *repository.PhotographerRepository
	availabilityRepo *repository.AvailabilityRepository
	bookingRepo      *repository.BookingRepository
	locationRepo     *repository.LocationRepository
}

func NewPhotographerService(
	photographerRepo *repository.PhotographerRepository,
	availabilityRepo *repository.AvailabilityRepository,
	bookingRepo *repository.BookingRepository,
	locationRepo *repository.LocationRepository,
) *PhotographerService {
	return &PhotographerService{
		photographerRepo: photographerRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		locationRepo:     locationRepo,
	}
}

func (s *PhotographerService) Get(ctx context.Context, id uint) (*models.Photographer, error) {
	p, err := s.photographerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepo(err, "photographer")
	}
	return p, nil
}

func (s *PhotographerService) List(ctx context.Context, filter models.PhotographerFilter) ([]models.Photographer, error) {
	if filter.Grade != "" && !filter.Grade.Valid() {
		return nil, validationError("grade must be one of A-E")
	}
	return s.photographerRepo.List(ctx, filter)
}

// GetMine giriş yapan fotoğrafçının profili
func (s *PhotographerService) GetMine(ctx context.Context, userID uint) (*models.Photographer, error) {
	p, err := s.photographerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepo(err, "photographer profile")
	}
	return p, nil
}

func (s *PhotographerService) UpdateMine(ctx context.Context, userID uint, req models.UpdatePhotographerRequest) (*models.Photographer, error) {
	p, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		p.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Specialty != nil {
		p.Specialty = *req.Specialty
	}
	if req.DailyRate != nil {
		if *req.DailyRate < 0 {
			return nil, validationError("daily rate cannot be negative")
		}
		p.DailyRate = *req.DailyRate
	}
	if req.LocationID != nil {
		if *req.LocationID == 0 {
			p.LocationID = nil
		} else {
			loc, err := s.locationRepo.GetByID(ctx, *req.LocationID)
			if err != nil {
				return nil, wrapRepo(err, "location")
			}
			p.LocationID = &loc.ID
			p.Location = loc
		}
	}

	if err := s.photographerRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PhotographerService) AssignGrade(ctx context.Context, photographerID uint, grade models.Grade) (*models.Photographer, error) {
	if !grade.Valid() {
		return nil, validationError("grade must be one of A-E")
	}
	if err := s.photographerRepo.UpdateGrade(ctx, photographerID, grade); err != nil {
		return nil, wrapRepo(err, "photographer")
	}
	return s.Get(ctx, photographerID)
}

func (s *PhotographerService) BlockDates(ctx context.Context, userID uint, req models.AvailabilityRequest) error {
	p, err := s.GetMine(ctx, userID)
	if err != nil {
		return err
	}
	dates, err := normalizeDates(req.Dates)
	if err != nil {
		return err
	}
	return s.availabilityRepo.Block(ctx, p.ID, dates, req.Note)
}

func (s *PhotographerService) UnblockDates(ctx context.Context, userID uint, dates []string) (int64, error) {
	p, err := s.GetMine(ctx, userID)
	if err != nil {
		return 0, err
	}
	normalized, err := normalizeDates(dates)
	if err != nil {
		return 0, err
	}
	return s.availabilityRepo.Unblock(ctx, p.ID, normalized)
}

// BlockedDates from ve to dahil bloklu günleri döndürür
func (s *PhotographerService) BlockedDates(ctx context.Context, photographerID uint, from, to time.Time) ([]models.Availability, error) {
	if to.Before(from) {
		return nil, validationError("to must not be before from")
	}
	if to.Sub(from) > maxAvailabilityRange*24*time.Hour {
		return nil, validationError("range cannot exceed %d days", maxAvailabilityRange)
	}
	if _, err := s.Get(ctx, photographerID); err != nil {
		return nil, err
	}
	return s.availabilityRepo.ListRange(ctx, photographerID, from.Format(models.DateLayout), to.Format(models.DateLayout))
}

// IsAvailable fotoğrafçı verilen günden başlayarak days gün boyunca bloklu
// değilse ve aktif bir rezervasyonla çakışmıyorsa true döner
func (s *PhotographerService) IsAvailable(ctx context.Context, photographerID uint, date time.Time, days int) (bool, error) {
	return personAvailable(ctx, s.availabilityRepo, s.bookingRepo, photographerID, date, days)
}

// personAvailable checkout transaction'ı içinde tx repository'leriyle de çağrılır
func personAvailable(ctx context.Context, availabilityRepo *repository.AvailabilityRepository, bookingRepo *repository.BookingRepository, photographerID uint, date time.Time, days int) (bool, error) {
	start, end := bookingSpan(date, days)

	blocked, err := availabilityRepo.ListRange(ctx, photographerID, start.Format(models.DateLayout), end.Format(models.DateLayout))
	if err != nil {
		return false, err
	}
	if len(blocked) > 0 {
		return false, nil
	}

	bookings, err := bookingRepo.ActiveForPhotographer(ctx, photographerID, end)
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		bStart, bEnd := bookingSpan(b.Date, b.RentalDays)
		if !bEnd.Before(start) && !bStart.After(end) {
			return false, nil
		}
	}
	return true, nil
}

// bookingSpan ilk ve son günü döndürür, ikisi de dahil
func bookingSpan(date time.Time, days int) (time.Time, time.Time) {
	start := truncateDay(date)
	return start, start.AddDate(0, 0, max(days, 1)-1)
}

func normalizeDates(in []string) ([]string, error) {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		d, err := time.Parse(models.DateLayout, strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, raw)
		}
		key := d.Format(models.DateLayout)
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
