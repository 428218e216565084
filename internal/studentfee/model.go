// internal/studentfee/model.go
package studentfee

import (
	"time"

	"gorm.io/gorm"
)

// Payment status of an obligation. Derived from the payment ledger by
// Reconcile; never written anywhere else.
const (
	StatusPending = "PENDING"
	StatusPartial = "PARTIAL"
	StatusPaid    = "PAID"
)

// StudentFee is one fee obligation assigned to a student for an academic
// year. TotalAmount is captured at assignment time and does not follow
// later catalog price changes. PaidAmount and Status are derived columns
// owned by Reconcile.
type StudentFee struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	StudentID    uint       `gorm:"not null;index" json:"studentId"`
	CategoryID   uint       `gorm:"not null;index" json:"categoryId"`
	AcademicYear string     `gorm:"size:20;not null" json:"academicYear"`
	TotalAmount  float64    `gorm:"not null" json:"totalAmount"`
	PaidAmount   float64    `gorm:"not null;default:0" json:"paidAmount"`
	Status       string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	DueDate      *time.Time `json:"dueDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Balance is the amount still due, always computed at read time.
func (f *StudentFee) Balance() float64 {
	return f.TotalAmount - f.PaidAmount
}

// Migrate creates the student_fees table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&StudentFee{})
}
