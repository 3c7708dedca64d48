package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onewave/route-compass/internal/models"
)

// UserRepository persists users and their onboarding profiles. Find methods
// return (nil, nil) when no row exists so callers pick their own error kind.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *models.User) error

	CreateDetails(details *models.UserDetails) error
	FindDetailsByUser(userID uuid.UUID) (*models.UserDetails, error)
	UpdateDetails(details *models.UserDetails) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create implements UserRepository.
func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID implements UserRepository.
func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByEmail implements UserRepository.
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// ExistsByEmail implements UserRepository.
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users by email: %w", err)
	}
	return count > 0, nil
}

// Update implements UserRepository.
func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// CreateDetails implements UserRepository.
func (r *userRepository) CreateDetails(details *models.UserDetails) error {
	if err := r.db.Create(details).Error; err != nil {
		return fmt.Errorf("failed to create user details: %w", err)
	}
	return nil
}

// FindDetailsByUser implements UserRepository.
func (r *userRepository) FindDetailsByUser(userID uuid.UUID) (*models.UserDetails, error) {
	var details models.UserDetails
	if err := r.db.Where("user_id = ?", userID).First(&details).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user details: %w", err)
	}
	return &details, nil
}

// UpdateDetails implements UserRepository.
func (r *userRepository) UpdateDetails(details *models.UserDetails) error {
	if err := r.db.Save(details).Error; err != nil {
		return fmt.Errorf("failed to update user details: %w", err)
	}
	return nil
}
