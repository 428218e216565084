// internal/feepayment/receipt.go
package feepayment

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Receipt numbers are an external contract: "RCP" followed by exactly six
// zero-padded decimal digits. The first receipt of an empty ledger is
// RCP000001.
const (
	receiptPrefix = "RCP"
	receiptSeqID  = 1
)

// ErrReceiptSequenceMissing means the counter row was never seeded; the
// allocator refuses to guess instead of restarting at RCP000001 over a
// non-empty ledger.
var ErrReceiptSequenceMissing = errors.New("receipt sequence not initialized")

// seedReceiptSequence creates the counter row if absent, starting from the
// highest numeric suffix of any existing receipt so numbering stays
// monotonic across ledgers that predate the counter.
func seedReceiptSequence(db *gorm.DB) error {
	var seq ReceiptSequence
	err := db.First(&seq, receiptSeqID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var last int64
	if err := db.Model(&FeePayment{}).
		Where("receipt_number LIKE ?", receiptPrefix+"%").
		Select("COALESCE(MAX(CAST(substr(receipt_number, 4) AS INTEGER)), 0)").
		Scan(&last).Error; err != nil {
		return err
	}

	return db.Create(&ReceiptSequence{ID: receiptSeqID, LastNumber: last}).Error
}

// nextReceiptNumber increments the counter row and formats the result.
// Must run on the same tx as the payment insert: the row lock taken by the
// UPDATE serializes concurrent allocations, and a rollback returns the
// number to the pool.
func nextReceiptNumber(tx *gorm.DB) (string, error) {
	res := tx.Model(&ReceiptSequence{}).
		Where("id = ?", receiptSeqID).
		UpdateColumn("last_number", gorm.Expr("last_number + 1"))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", ErrReceiptSequenceMissing
	}

	var seq ReceiptSequence
	if err := tx.First(&seq, receiptSeqID).Error; err != nil {
		return "", err
	}
	return FormatReceiptNumber(seq.LastNumber), nil
}

// FormatReceiptNumber renders a numeric suffix in the RCP###### contract
// format.
func FormatReceiptNumber(n int64) string {
	return fmt.Sprintf("%s%06d", receiptPrefix, n)
}
