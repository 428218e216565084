// internal/feepayment/model.go
package feepayment

import (
	"time"

	"gorm.io/gorm"
)

// Accepted payment modes.
const (
	ModeCash   = "CASH"
	ModeOnline = "ONLINE"
	ModeCheque = "CHEQUE"
	ModeCard   = "CARD"
)

// FeePayment is one monetary payment applied against a StudentFee.
// Rows are written exactly once and never edited or voided.
type FeePayment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StudentFeeID  uint      `gorm:"not null;index" json:"studentFeeId"`
	PaymentDate   time.Time `gorm:"not null;index" json:"paymentDate"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMode   string    `gorm:"size:20;not null" json:"paymentMode"`
	TransactionID string    `gorm:"size:100" json:"transactionId"`
	ReceiptNumber string    `gorm:"size:20;not null;uniqueIndex" json:"receiptNumber"`
	ReceivedBy    *uint     `json:"receivedBy"`
	Remarks       string    `gorm:"size:255" json:"remarks"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ReceiptSequence is the single counter row receipt numbers are drawn
// from. Incremented atomically inside the payment transaction.
type ReceiptSequence struct {
	ID         uint  `gorm:"primaryKey"`
	LastNumber int64 `gorm:"not null;default:0"`
}

// Migrate creates the payment tables and seeds the receipt counter.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&FeePayment{}, &ReceiptSequence{}); err != nil {
		return err
	}
	return seedReceiptSequence(db)
}
