// internal/feecategory/repository.go
package feecategory

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInvalidBaseAmount is returned when a category is created or updated
// with a negative base amount.
var ErrInvalidBaseAmount = errors.New("base amount must not be negative")

// Repository encapsulates data access for fee categories.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListActive returns every active category ordered by name.
func (r *Repository) ListActive() ([]FeeCategory, error) {
	var categories []FeeCategory
	err := r.DB.
		Where("is_active = ?", true).
		Order("category_name ASC").
		Find(&categories).Error
	return categories, err
}

// FindByID looks up a single category.
func (r *Repository) FindByID(id uint) (*FeeCategory, error) {
	var category FeeCategory
	if err := r.DB.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category, active by default.
func (r *Repository) Create(c *FeeCategory) error {
	if c.BaseAmount < 0 {
		return ErrInvalidBaseAmount
	}
	c.IsActive = true
	return r.DB.Create(c).Error
}

// Update rewrites the display fields of an existing category. The active
// flag is managed separately through Deactivate.
func (r *Repository) Update(id uint, data *FeeCategory) (*FeeCategory, error) {
	if data.BaseAmount < 0 {
		return nil, ErrInvalidBaseAmount
	}

	var existing FeeCategory
	if err := r.DB.First(&existing, id).Error; err != nil {
		return nil, err
	}

	existing.CategoryName = data.CategoryName
	existing.BaseAmount = data.BaseAmount
	existing.Description = data.Description

	if err := r.DB.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Deactivate soft-disables a category; returns gorm.ErrRecordNotFound if
// no row matched.
func (r *Repository) Deactivate(id uint) error {
	res := r.DB.Model(&FeeCategory{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
