package models

import (
	"time"
)

// Grade admin tarafından atanan fotoğrafçı seviyesi (A-E)
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeE:
		return true
	}
	return false
}

// DateLayout müsaitlik ve sepet tarihlerinin gün formatı
const DateLayout = "2006-01-02"

type Specialty string

const (
	SpecialtyPhotographer Specialty = "photographer"
	SpecialtyVideographer Specialty = "videographer"
)

type Photographer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"display_name" gorm:"not null"`
	Bio         string    `json:"bio"`
	Specialty   Specialty `json:"specialty" gorm:"type:varchar(20);not null;default:'photographer'"`
	LocationID  *uint     `json:"location_id"`
	DailyRate   float64   `json:"daily_rate" gorm:"not null;default:0"`
	Grade       Grade     `json:"grade" gorm:"type:varchar(1);not null;default:'C'"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Location  *Location        `json:"location,omitempty"`
	Portfolio []PortfolioImage `json:"portfolio,omitempty"`
}

// Availability fotoğrafçının müsait olmadığı (bloklu) günler
type Availability struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	PhotographerID uint      `json:"photographer_id" gorm:"uniqueIndex:idx_photographer_date;not null"`
	Date           string    `json:"date" gorm:"uniqueIndex:idx_photographer_date;size:10;not null"` // 2006-01-02
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
}

type PortfolioImage struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	PhotographerID uint      `json:"photographer_id" gorm:"index;not null"`
	FileName       string    `json:"file_name" gorm:"not null"`
	FileSize       int64     `json:"file_size" gorm:"not null"`
	MimeType       string    `json:"mime_type" gorm:"not null"`
	R2Key          string    `json:"r2_key" gorm:"not null"`
	ImageID        string    `json:"image_id"`
	Variants       []string  `json:"variants" gorm:"serializer:json"`
	PublicURL      string    `json:"public_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type UpdatePhotographerRequest struct {
	DisplayName *string    `json:"display_name" validate:"omitempty,min=2"`
	Bio         *string    `json:"bio"`
	Specialty   *Specialty `json:"specialty" validate:"omitempty,oneof=photographer videographer"`
	LocationID  *uint      `json:"location_id"`
	DailyRate   *float64   `json:"daily_rate" validate:"omitempty,gte=0"`
}

type AssignGradeRequest struct {
	Grade Grade `json:"grade" validate:"required,oneof=A B C D E"`
}

type AvailabilityRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
	Note  string   `json:"note"`
}

type PhotographerFilter struct {
	Specialty  Specialty
	LocationID uint
	Grade      Grade
	Date       *time.Time
}

type PortfolioImageResponse struct {
	ID           uint      `json:"id"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	PublicURL    string    `json:"public_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}
