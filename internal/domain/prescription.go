package domain

import "time"

// PrescriptionLine is one medication entry within a prescription.
// UnitPriceMinor is captured from the medication at finalize time — all
// totals use this snapshot, never the live catalog price.
type PrescriptionLine struct {
	ID                string `json:"id"`
	PrescriptionID    string `json:"prescription_id"`
	MedicationID      string `json:"medication_id"`
	MedicationName    string `json:"medication_name"`
	Quantity          int32  `json:"quantity"`
	DosageInstruction string `json:"dosage_instruction"`
	UnitPriceMinor    int64  `json:"unit_price_minor"`
	SubtotalMinor     int64  `json:"subtotal_minor"`
	LineNo            int32  `json:"line_no"`
}

// Prescription is immutable once finalized; deleting it restores stock for
// every line.
type Prescription struct {
	ID         string             `json:"id"`
	PatientID  string             `json:"patient_id"`
	DoctorID   string             `json:"doctor_id"`
	Date       string             `json:"date"` // yyyy-mm-dd
	Lines      []PrescriptionLine `json:"lines"`
	TotalMinor int64              `json:"total_minor"`
	CreatedOn  time.Time          `json:"created_on"`
}
