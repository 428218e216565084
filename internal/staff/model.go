package staff

import (
	"time"

	"gorm.io/gorm"
)

// Staff is an office account that can sign in and record payments. The
// staff ID ends up on FeePayment.ReceivedBy.
type Staff struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Username     string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Migrate creates the staffs table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Staff{})
}
