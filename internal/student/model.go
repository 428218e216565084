package student

import (
	"time"

	"gorm.io/gorm"
)

// Student is the owner of fee obligations. The ledger's query surface joins
// against this table for display names and usernames.
type Student struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Username     string    `gorm:"size:100;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:150" json:"email"`
	Phone        string    `gorm:"size:30" json:"phone"`
	EnrollmentNo string    `gorm:"size:50" json:"enrollmentNo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Migrate creates the students table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Student{})
}
