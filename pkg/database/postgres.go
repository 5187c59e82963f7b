package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sefazor/shootbook-backend/internal/booking"
	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/pkg/bcrypt"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := SeedAdmin(db, bcrypt.NewHasher(cfg.BcryptCost), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Warn("admin seed failed", zap.Error(err))
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Photographer{},
		&models.Availability{},
		&models.PortfolioImage{},
		&models.Equipment{},
		&models.Transport{},
		&models.Booking{},
		&models.BookingItem{},
		&models.Notification{},
		&booking.CartRecord{},
	)
}

// SeedAdmin ADMIN_EMAIL tanımlıysa ve kullanıcı yoksa admin hesabını oluşturur
func SeedAdmin(db *gorm.DB, hasher *bcrypt.Hasher, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.Role != models.RoleAdmin {
			return db.Model(&existing).Update("role", models.RoleAdmin).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := hasher.HashPassword(password)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		FullName: "Administrator",
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}).Error
}
