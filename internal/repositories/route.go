package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"onewave/route-compass/internal/models"
)

type RouteRepository interface {
	Create(route *models.Route) error
	// FindAll returns every route without steps, ordered by ID. This is the
	// candidate population for matching.
	FindAll() ([]models.Route, error)
	// FindFiltered returns routes with steps preloaded, optionally narrowed
	// by job and background.
	FindFiltered(job, background string) ([]models.Route, error)
	FindByID(id uint) (*models.Route, error)
	Count() (int64, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

// Create implements RouteRepository.
func (r *routeRepository) Create(route *models.Route) error {
	if err := r.db.Create(route).Error; err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}
	return nil
}

// FindAll implements RouteRepository.
func (r *routeRepository) FindAll() ([]models.Route, error) {
	var routes []models.Route
	if err := r.db.Order("id ASC").Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// FindFiltered implements RouteRepository.
func (r *routeRepository) FindFiltered(job, background string) ([]models.Route, error) {
	query := r.db.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("step_order ASC")
	}).Order("id ASC")

	if job != "" {
		query = query.Where("job = ?", job)
	}
	if background != "" {
		query = query.Where("background = ?", background)
	}

	var routes []models.Route
	if err := query.Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// FindByID implements RouteRepository.
func (r *routeRepository) FindByID(id uint) (*models.Route, error) {
	var route models.Route
	err := r.db.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("step_order ASC")
	}).Where("id = ?", id).First(&route).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find route: %w", err)
	}
	return &route, nil
}

// Count implements RouteRepository.
func (r *routeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Route{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count routes: %w", err)
	}
	return count, nil
}
