package database

import (
	"time"

	"mapmygap/internal/logger"
	"mapmygap/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to Postgres with a bounded retry loop, runs migrations
// and seeds the default admin. Fatal if the database never comes up;
// history is a hard dependency once a DSN is configured.
func Init(dsn, adminUsername, adminPassword string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		logger.S().Infof("connecting to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logger.S().Info("connected to DB")
			break
		}

		logger.S().Warnf("DB connection failed: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		logger.S().Fatalf("failed to connect to DB after %d attempts: %v", maxAttempts, err)
	}

	if err := DB.AutoMigrate(&models.User{}, &models.HistoryEntry{}); err != nil {
		logger.S().Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(adminUsername, adminPassword)
}

// admin exists only via config, never via the register endpoint
func createDefaultAdmin(username, password string) {
	if password == "" {
		logger.S().Info("ADMIN_PASSWORD not set, skipping default admin")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		logger.S().Warnf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.S().Warnf("failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		logger.S().Warnf("failed to create default admin: %v", err)
		return
	}

	logger.L().Info("created default admin user", zap.String("username", username))
}
