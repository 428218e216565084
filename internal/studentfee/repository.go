// internal/studentfee/repository.go
package studentfee

import (
	"errors"
	"time"

	"github.com/campuscore/api-fees/internal/feecategory"
	"github.com/campuscore/api-fees/internal/student"
	"gorm.io/gorm"
)

var (
	// ErrInvalidAmount is returned when an obligation is assigned with a
	// non-positive total amount.
	ErrInvalidAmount = errors.New("total amount must be greater than zero")
	// ErrStudentNotFound is returned when the target student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrCategoryNotFound is returned when the fee category does not exist.
	ErrCategoryNotFound = errors.New("fee category not found")
	// ErrFeeNotFound is returned when an obligation does not exist.
	ErrFeeNotFound = errors.New("student fee not found")
)

// Repository encapsulates data access for fee obligations.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB returns a copy of the repo bound to a specific *gorm.DB (e.g. a tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

/* ============================== Assignment ============================== */

// Assign creates one new obligation for a student. The amount is fixed
// here; later catalog price changes do not touch existing obligations.
// Assigning the same category/year twice is allowed: each call is an
// independent installment.
func (r *Repository) Assign(studentID, categoryID uint, academicYear string, totalAmount float64, dueDate *time.Time) (*StudentFee, error) {
	if totalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	var s student.Student
	if err := r.DB.First(&s, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	var c feecategory.FeeCategory
	if err := r.DB.First(&c, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	fee := &StudentFee{
		StudentID:    studentID,
		CategoryID:   categoryID,
		AcademicYear: academicYear,
		TotalAmount:  totalAmount,
		PaidAmount:   0,
		Status:       StatusPending,
		DueDate:      dueDate,
	}
	if err := r.DB.Create(fee).Error; err != nil {
		return nil, err
	}
	return fee, nil
}

// FindByID looks up a single obligation.
func (r *Repository) FindByID(id uint) (*StudentFee, error) {
	var fee StudentFee
	if err := r.DB.First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeNotFound
		}
		return nil, err
	}
	return &fee, nil
}

/* ============================= Reconciliation ============================= */

// Reconcile recomputes paid_amount as the sum over the payment ledger and
// derives the status from it, in one update. Idempotent; safe to retry.
// Callers inside a transaction pass their tx handle so the recompute
// commits or rolls back with the payment insert.
func Reconcile(db *gorm.DB, feeID uint) error {
	var paid float64
	if err := db.Table("fee_payments").
		Where("student_fee_id = ?", feeID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error; err != nil {
		return err
	}

	var fee StudentFee
	if err := db.First(&fee, feeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeeNotFound
		}
		return err
	}

	status := StatusPending
	switch {
	case paid >= fee.TotalAmount:
		status = StatusPaid
	case paid > 0:
		status = StatusPartial
	}

	return db.Model(&StudentFee{}).
		Where("id = ?", feeID).
		Updates(map[string]interface{}{
			"paid_amount": paid,
			"status":      status,
		}).Error
}

/* ============================== Query surface ============================== */

const feeViewSelect = "student_fees.*, students.name AS student_name, " +
	"students.username AS student_username, fee_categories.category_name"

func fillBalances(fees []StudentFeeView) []StudentFeeView {
	for i := range fees {
		fees[i].Balance = fees[i].TotalAmount - fees[i].PaidAmount
	}
	return fees
}

// ListByStudent returns every obligation for one student, newest academic
// year first, then category name.
func (r *Repository) ListByStudent(studentID uint) ([]StudentFeeView, error) {
	var fees []StudentFeeView
	err := r.DB.
		Table("student_fees").
		Select(feeViewSelect).
		Joins("JOIN students ON students.id = student_fees.student_id").
		Joins("JOIN fee_categories ON fee_categories.id = student_fees.category_id").
		Where("student_fees.student_id = ?", studentID).
		Order("student_fees.academic_year DESC").
		Order("fee_categories.category_name ASC").
		Scan(&fees).Error
	if err != nil {
		return nil, err
	}
	return fillBalances(fees), nil
}

// ListPending returns every obligation not yet fully paid, soonest due first.
func (r *Repository) ListPending() ([]StudentFeeView, error) {
	var fees []StudentFeeView
	err := r.DB.
		Table("student_fees").
		Select(feeViewSelect).
		Joins("JOIN students ON students.id = student_fees.student_id").
		Joins("JOIN fee_categories ON fee_categories.id = student_fees.category_id").
		Where("student_fees.status != ?", StatusPaid).
		Order("student_fees.due_date ASC").
		Scan(&fees).Error
	if err != nil {
		return nil, err
	}
	return fillBalances(fees), nil
}

// ListAll returns every obligation regardless of status, latest due first.
func (r *Repository) ListAll() ([]StudentFeeView, error) {
	var fees []StudentFeeView
	err := r.DB.
		Table("student_fees").
		Select(feeViewSelect).
		Joins("JOIN students ON students.id = student_fees.student_id").
		Joins("JOIN fee_categories ON fee_categories.id = student_fees.category_id").
		Order("student_fees.due_date DESC").
		Scan(&fees).Error
	if err != nil {
		return nil, err
	}
	return fillBalances(fees), nil
}
