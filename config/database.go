package config

import (
	"context"
	"fmt"
	"time"

	"hotel-management/models"
	"hotel-management/services/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB mở kết nối PostgreSQL. TranslateError để gorm trả ErrDuplicatedKey khi vi phạm unique.
func ConnectDB(ctx context.Context, settings *Settings, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("fail to ping db: %w", err)
	}

	log.Info("Successfully connected to db %s", settings.DBName)
	return db, nil
}

// Migrate tạo hoặc cập nhật các bảng từ gorm tag của models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Guest{}, &models.Booking{}, &models.Reservation{})
}
