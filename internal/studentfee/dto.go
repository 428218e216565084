package studentfee

import "time"

// AssignFeeDTO is the body of POST /students/{id}/fees.
type AssignFeeDTO struct {
	CategoryID   uint       `json:"categoryId" validate:"required"`
	AcademicYear string     `json:"academicYear" validate:"required,max=20"`
	TotalAmount  float64    `json:"totalAmount" validate:"required"`
	DueDate      *time.Time `json:"dueDate"`
}

// StudentFeeView is an obligation joined with the display fields the UI
// renders next to it. Balance is filled in after the scan.
type StudentFeeView struct {
	ID              uint       `json:"id"`
	StudentID       uint       `json:"studentId"`
	CategoryID      uint       `json:"categoryId"`
	AcademicYear    string     `json:"academicYear"`
	TotalAmount     float64    `json:"totalAmount"`
	PaidAmount      float64    `json:"paidAmount"`
	Status          string     `json:"status"`
	DueDate         *time.Time `json:"dueDate"`
	StudentName     string     `json:"studentName"`
	StudentUsername string     `json:"studentUsername"`
	CategoryName    string     `json:"categoryName"`
	Balance         float64    `gorm:"-" json:"balance"`
}
