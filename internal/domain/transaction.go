package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodTransfer   PaymentMethod = "TRANSFER"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodBPJS       PaymentMethod = "BPJS"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodCreditCard,
		PaymentMethodDebitCard, PaymentMethodBPJS:
		return true
	}
	return false
}

// Transaction is the system of record for what was charged. TotalMinor is
// the estimator's output snapshotted at creation time and never recomputed;
// entity linkages are immutable after creation, only Method may change.
type Transaction struct {
	ID             string        `json:"id"`
	PatientID      string        `json:"patient_id"`
	PrescriptionID string        `json:"prescription_id"`
	StayID         *string       `json:"stay_id,omitempty"`
	Method         PaymentMethod `json:"method"`
	TotalMinor     int64         `json:"total_minor"`
	CreatedOn      time.Time     `json:"created_on"`
	UpdatedOn      time.Time     `json:"updated_on"`
}
