// internal/feepayment/repository.go
package feepayment

import (
	"errors"
	"strings"
	"time"

	"github.com/campuscore/api-fees/internal/studentfee"
	"gorm.io/gorm"
)

var (
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("payment amount must be greater than zero")
	// ErrInvalidPaymentMode is returned for modes outside CASH/ONLINE/CHEQUE/CARD.
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	// ErrFeeNotFound is returned when the target obligation does not exist.
	ErrFeeNotFound = errors.New("student fee not found")
	// ErrDuplicateReceipt is returned when the unique index on
	// receipt_number rejects the insert.
	ErrDuplicateReceipt = errors.New("duplicate receipt number")
)

var validModes = map[string]bool{
	ModeCash:   true,
	ModeOnline: true,
	ModeCheque: true,
	ModeCard:   true,
}

// Repository encapsulates data access for the payment ledger.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ============================= Payment recording ============================= */

// Record appends one payment against an obligation and reconciles the
// parent's paid amount and status, all in a single transaction: receipt
// allocation, insert and reconciliation commit together or not at all, so
// a failure can never leave a recorded payment with a stale parent
// balance. Overpayment is not rejected here; the invariant belongs to the
// calling client.
func (r *Repository) Record(feeID uint, in RecordPaymentDTO, receivedBy *uint) (*FeePayment, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validModes[in.PaymentMode] {
		return nil, ErrInvalidPaymentMode
	}

	paymentDate := time.Now()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}

	tx := r.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var fee studentfee.StudentFee
	if err := tx.First(&fee, feeID).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeNotFound
		}
		return nil, err
	}

	receipt, err := nextReceiptNumber(tx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	payment := &FeePayment{
		StudentFeeID:  feeID,
		PaymentDate:   paymentDate,
		Amount:        in.Amount,
		PaymentMode:   in.PaymentMode,
		TransactionID: in.TransactionID,
		ReceiptNumber: receipt,
		ReceivedBy:    receivedBy,
		Remarks:       in.Remarks,
	}
	if err := tx.Create(payment).Error; err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReceipt
		}
		return nil, err
	}

	if err := studentfee.Reconcile(tx, feeID); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	return payment, nil
}

/* ================================ Read paths ================================ */

// History returns every payment for one obligation, newest first.
func (r *Repository) History(feeID uint) ([]FeePayment, error) {
	var payments []FeePayment
	err := r.DB.
		Where("student_fee_id = ?", feeID).
		Order("payment_date DESC").
		Order("id DESC").
		Find(&payments).Error
	return payments, err
}

// Search returns payments joined with student name, category name and
// academic year. A non-empty keyword filters by case-insensitive substring
// match on student name or receipt number; an empty keyword returns the
// whole ledger, newest first.
func (r *Repository) Search(keyword string) ([]PaymentView, error) {
	q := r.DB.
		Table("fee_payments").
		Select("fee_payments.*, students.name AS student_name, " +
			"fee_categories.category_name, student_fees.academic_year").
		Joins("JOIN student_fees ON student_fees.id = fee_payments.student_fee_id").
		Joins("JOIN students ON students.id = student_fees.student_id").
		Joins("JOIN fee_categories ON fee_categories.id = student_fees.category_id")

	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		q = q.Where("LOWER(students.name) LIKE ? OR LOWER(fee_payments.receipt_number) LIKE ?", pattern, pattern)
	}

	var payments []PaymentView
	err := q.
		Order("fee_payments.payment_date DESC").
		Order("fee_payments.id DESC").
		Scan(&payments).Error
	return payments, err
}
