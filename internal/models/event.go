package models

import "time"

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent broker üzerinden yayınlanan rezervasyon olayı
type BookingEvent struct {
	Type            string        `json:"type"`
	BookingID       uint          `json:"booking_id"`
	Reference       string        `json:"reference"`
	UserID          uint          `json:"user_id"`
	PhotographerIDs []uint        `json:"photographer_ids,omitempty"`
	Status          BookingStatus `json:"status"`
	PreviousStatus  BookingStatus `json:"previous_status,omitempty"`
	Date            time.Time     `json:"date"`
	TotalCost       float64       `json:"total_cost"`
	OccurredAt      time.Time     `json:"occurred_at"`
}
