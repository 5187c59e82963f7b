package models

type CheckoutSession struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	BookingID uint    `json:"booking_id"`
	Amount    float64 `json:"amount"`
}
