package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tx aynı veritabanı transaction'ına bağlı repository'ler
type Tx struct {
	Bookings      *BookingRepository
	Availability  *AvailabilityRepository
	Equipment     *EquipmentRepository
	Photographers *PhotographerRepository
}

type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// Run fn nil dönerse commit, aksi halde rollback eder. fn içinde sadece tx
// repository'leri kullanılmalı.
func (t *Transactor) Run(ctx context.Context, fn func(tx *Tx) error) error {
	return t.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(&Tx{
			Bookings:      NewBookingRepository(db),
			Availability:  NewAvailabilityRepository(db),
			Equipment:     NewEquipmentRepository(db),
			Photographers: NewPhotographerRepository(db),
		})
	})
}

// forUpdate satırları id sırasıyla kilitler, sıralama iki checkout'un
// birbirini kilitlemesini önler
func forUpdate(db *gorm.DB, ids []uint) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id")
}
