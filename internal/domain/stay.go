package domain

import "time"

type StayStatus string

const (
	StayStatusActive     StayStatus = "ACTIVE"
	StayStatusDischarged StayStatus = "DISCHARGED" // terminal
)

// InpatientStay is one continuous room occupancy episode. At most one
// ACTIVE stay exists per patient; while ACTIVE the linked room is OCCUPIED.
type InpatientStay struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patient_id"`
	RoomID        string     `json:"room_id"`
	AdmitDate     string     `json:"admit_date"`               // yyyy-mm-dd
	DischargeDate *string    `json:"discharge_date,omitempty"` // yyyy-mm-dd
	Status        StayStatus `json:"status"`
	CreatedOn     time.Time  `json:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on"`
}
