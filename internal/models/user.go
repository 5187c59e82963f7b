package models

import (
	"time"
)

type Role string

const (
	RoleCustomer     Role = "customer"
	RolePhotographer Role = "photographer"
	RoleAdmin        Role = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'customer'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Photographer *Photographer `json:"photographer,omitempty" gorm:"foreignKey:UserID"`
}
