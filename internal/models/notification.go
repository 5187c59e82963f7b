package models

import "time"

const (
	NotificationBookingCreated       = "booking_created"
	NotificationBookingAssigned      = "booking_assigned"
	NotificationBookingStatusChanged = "booking_status_changed"
)

type Notification struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	Type      string     `json:"type" gorm:"size:50;not null"`
	Title     string     `json:"title" gorm:"not null"`
	Message   string     `json:"message"`
	BookingID *uint      `json:"booking_id,omitempty"`
	IsRead    bool       `json:"is_read" gorm:"index;default:false"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
