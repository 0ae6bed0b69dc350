package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mroshb/quiz_bot/internal/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	err = db.AutoMigrate(
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
		t.Fatal(err)
	}

	return db
}
