package models

import "github.com/sefazor/shootbook-backend/internal/booking"

type SetBookingTypeRequest struct {
	Type string `json:"type" validate:"required"`
}

type SetLocationRequest struct {
	LocationID uint `json:"location_id" validate:"required"`
}

type SetDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SetRentalDaysRequest pozitif olmayan değerler sepet tarafından yok sayılır
type SetRentalDaysRequest struct {
	Days int `json:"days"`
}

type AddCartItemRequest struct {
	Kind     string `json:"kind" validate:"required"`
	RefID    uint   `json:"ref_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type GoToStepRequest struct {
	Step string `json:"step" validate:"required"`
}

type CartResponse struct {
	Cart        *booking.Cart  `json:"cart"`
	Steps       []booking.Step `json:"steps"`
	CurrentStep booking.Step   `json:"current_step"`
	Position    int            `json:"position"`
	StepCount   int            `json:"step_count"`
	ItemCount   int            `json:"item_count"`
	Total       float64        `json:"total"`
}

func NewCartResponse(cart *booking.Cart) CartResponse {
	pos, count := cart.Progress()
	return CartResponse{
		Cart:        cart,
		Steps:       cart.Steps(),
		CurrentStep: cart.CurrentStep(),
		Position:    pos,
		StepCount:   count,
		ItemCount:   cart.ItemCount(),
		Total:       cart.Total(),
	}
}
