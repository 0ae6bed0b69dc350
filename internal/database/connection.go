package database

import (
	"fmt"
	"time"

	"github.com/mroshb/quiz_bot/internal/config"
	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/mroshb/quiz_bot/internal/security"
	"github.com/mroshb/quiz_bot/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Theme{},
		&models.Question{},
		&models.Answer{},
		&models.Game{},
		&models.Player{},
		&models.Score{},
		&models.GameSession{},
		&models.AdminUser{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// SeedAdmin creates the default admin account from the environment if it
// does not exist yet.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	db.Model(&models.AdminUser{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	logger.Info("Seeding default admin", "email", cfg.AdminEmail)
	return db.Create(&models.AdminUser{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
	}).Error
}

// SeedCatalog loads a starter set of themes and questions when the catalog
// is empty, so a fresh install has something to play.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&models.Theme{}).Count(&count)
	if count > 0 {
		return nil
	}

	logger.Info("Seeding starter quiz catalog...")

	themes := []models.Theme{
		{
			Title: "Geography",
			Questions: []models.Question{
				{
					Title: "What is the capital of France?",
					Answers: []models.Answer{
						{Title: "Paris", IsCorrect: true},
						{Title: "London"},
						{Title: "Berlin"},
						{Title: "Rome"},
					},
				},
				{
					Title: "Which is the largest ocean on Earth?",
					Answers: []models.Answer{
						{Title: "Atlantic"},
						{Title: "Indian"},
						{Title: "Pacific", IsCorrect: true},
						{Title: "Arctic"},
					},
				},
			},
		},
		{
			Title: "Science",
			Questions: []models.Question{
				{
					Title: "Which planet is known as the Red Planet?",
					Answers: []models.Answer{
						{Title: "Earth"},
						{Title: "Mars", IsCorrect: true},
						{Title: "Jupiter"},
						{Title: "Venus"},
					},
				},
				{
					Title: "What gas do plants absorb from the atmosphere?",
					Answers: []models.Answer{
						{Title: "Oxygen"},
						{Title: "Carbon dioxide", IsCorrect: true},
						{Title: "Nitrogen"},
						{Title: "Hydrogen"},
					},
				},
			},
		},
		{
			Title: "History",
			Questions: []models.Question{
				{
					Title: "Who invented the telephone?",
					Answers: []models.Answer{
						{Title: "Thomas Edison"},
						{Title: "Alexander Graham Bell", IsCorrect: true},
						{Title: "Nikola Tesla"},
						{Title: "Isaac Newton"},
					},
				},
			},
		},
	}

	return db.Create(&themes).Error
}
