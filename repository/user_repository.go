package repository

import (
	"gorm.io/gorm"

	"github.com/SineMag/Eatery/entity"
)

// UserRepository is the only place that talks to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByRole backs the staff-accounts screen on the admin dashboard.
func (r *UserRepository) ListByRole(role string) ([]entity.User, error) {
	var users []entity.User
	if err := r.DB.Where("role = ?", role).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
