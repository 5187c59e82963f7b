package models

import "time"

type Location struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"unique;not null"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Equipment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	DailyRate   float64   `json:"daily_rate" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"not null;default:1"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Equipment) TableName() string {
	return "equipment"
}

type Transport struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	VehicleType string    `json:"vehicle_type"`
	Capacity    int       `json:"capacity"`
	DailyRate   float64   `json:"daily_rate" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Transport) TableName() string {
	return "transport"
}

type LocationRequest struct {
	Name        string `json:"name" validate:"required"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type EquipmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	DailyRate   float64 `json:"daily_rate" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active"`
}

type TransportRequest struct {
	Name        string  `json:"name" validate:"required"`
	VehicleType string  `json:"vehicle_type"`
	Capacity    int     `json:"capacity" validate:"gte=0"`
	DailyRate   float64 `json:"daily_rate" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active"`
}
