package domain

import "time"

type AdmissionStatus string

const (
	AdmissionStatusOutpatient AdmissionStatus = "OUTPATIENT"
	AdmissionStatusInpatient  AdmissionStatus = "INPATIENT"
)

// Patient.AdmissionStatus mirrors "has an active stay". Both facts are
// written inside the same transaction on admit/discharge so they can never
// drift; the consistency audit job verifies that.
type Patient struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	AdmissionStatus AdmissionStatus `json:"admission_status"`
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
}
