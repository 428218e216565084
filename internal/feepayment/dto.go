package feepayment

import "time"

// RecordPaymentDTO is the body of POST /fees/{id}/payments. PaymentDate
// defaults to the current time when omitted. ReceivedBy is taken from the
// authenticated session, never from the body.
type RecordPaymentDTO struct {
	Amount        float64    `json:"amount" validate:"required"`
	PaymentMode   string     `json:"paymentMode" validate:"required,oneof=CASH ONLINE CHEQUE CARD"`
	PaymentDate   *time.Time `json:"paymentDate"`
	TransactionID string     `json:"transactionId" validate:"max=100"`
	Remarks       string     `json:"remarks" validate:"max=255"`
}

// PaymentView is a payment joined with the display fields shown on
// receipts and in search results.
type PaymentView struct {
	ID            uint      `json:"id"`
	StudentFeeID  uint      `json:"studentFeeId"`
	PaymentDate   time.Time `json:"paymentDate"`
	Amount        float64   `json:"amount"`
	PaymentMode   string    `json:"paymentMode"`
	TransactionID string    `json:"transactionId"`
	ReceiptNumber string    `json:"receiptNumber"`
	ReceivedBy    *uint     `json:"receivedBy"`
	Remarks       string    `json:"remarks"`
	StudentName   string    `json:"studentName"`
	CategoryName  string    `json:"categoryName"`
	AcademicYear  string    `json:"academicYear"`
}
