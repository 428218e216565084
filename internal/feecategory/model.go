// internal/feecategory/model.go
package feecategory

import (
	"time"

	"gorm.io/gorm"
)

// FeeCategory is a named, priced type of fee the institution can charge
// (Tuition, Hostel, Library...). Categories are never hard-deleted, only
// deactivated, so obligations that reference them stay resolvable.
type FeeCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryName string    `gorm:"size:100;not null;uniqueIndex" json:"categoryName"`
	BaseAmount   float64   `gorm:"not null;default:0" json:"baseAmount"`
	Description  string    `gorm:"size:255" json:"description"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Migrate creates the fee_categories table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&FeeCategory{})
}
