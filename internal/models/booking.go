package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusPaid, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusPaid, BookingStatusCompleted},
	BookingStatusPaid:      {BookingStatusCompleted},
}

// CanTransitionTo cancelled ve completed son durumlardır. Sadece pending
// rezervasyonlar iptal edilebilir, ödeme alınmış bir rezervasyon iptal edilmez.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Reference       string        `json:"reference" gorm:"uniqueIndex;size:36;not null"`
	UserID          uint          `json:"user_id" gorm:"index;not null"`
	Type            string        `json:"type" gorm:"size:20;not null"`
	LocationID      uint          `json:"location_id" gorm:"not null"`
	LocationName    string        `json:"location_name"`
	Date            time.Time     `json:"date" gorm:"not null"`
	RentalDays      int           `json:"rental_days" gorm:"not null;default:1"`
	TotalCost       float64       `json:"total_cost" gorm:"not null"`
	Status          BookingStatus `json:"status" gorm:"size:20;index;not null;default:'pending'"`
	StripeSessionID string        `json:"-" gorm:"index"`
	Notes           string        `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	User          *User          `json:"user,omitempty"`
	Photographers []Photographer `json:"photographers,omitempty" gorm:"many2many:booking_photographers;"`
	Items         []BookingItem  `json:"items,omitempty"`
}

// BookingItem checkout anındaki sepet kaleminin kopyası
type BookingItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	BookingID uint    `json:"booking_id" gorm:"index;not null"`
	Kind      string  `json:"kind" gorm:"size:20;not null"`
	RefID     uint    `json:"ref_id" gorm:"not null"`
	Name      string  `json:"name"`
	DailyRate float64 `json:"daily_rate" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Subtotal  float64 `json:"subtotal" gorm:"not null"`
}

type CheckoutRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=confirmed cancelled completed"`
}

type BookingFilter struct {
	Status BookingStatus
	UserID uint
}
