package repositories

import (
	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/mroshb/quiz_bot/pkg/errors"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	result := r.db.Where("email = ?", email).First(&admin)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "admin not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get admin")
	}

	return &admin, nil
}

func (r *AdminRepository) Create(email, passwordHash string) (*models.AdminUser, error) {
	if _, err := r.GetByEmail(email); err == nil {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "admin already exists")
	}

	admin := &models.AdminUser{
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := r.db.Create(admin).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create admin")
	}

	return admin, nil
}
