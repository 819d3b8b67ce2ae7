package domain

// RoomCharge itemizes the room component of an estimate.
type RoomCharge struct {
	StayID            string `json:"stay_id"`
	RoomID            string `json:"room_id"`
	RoomName          string `json:"room_name"`
	TariffPerDayMinor int64  `json:"tariff_per_day_minor"`
	LengthOfStayDays  int32  `json:"length_of_stay_days"`
	CostMinor         int64  `json:"cost_minor"`
}

// MedicineCharge itemizes one prescription line of an estimate.
type MedicineCharge struct {
	MedicationID   string `json:"medication_id"`
	MedicationName string `json:"medication_name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	SubtotalMinor  int64  `json:"subtotal_minor"`
}

// Estimate is the itemized cost breakdown for a patient's episode of care.
// Stay and prescription are independently optional; a missing component
// contributes zero, never an error.
type Estimate struct {
	PatientID         string           `json:"patient_id"`
	RoomCharge        *RoomCharge      `json:"room_charge,omitempty"`
	MedicineCharges   []MedicineCharge `json:"medicine_charges,omitempty"`
	RoomCostMinor     int64            `json:"room_cost_minor"`
	MedicineCostMinor int64            `json:"medicine_cost_minor"`
	TotalMinor        int64            `json:"total_minor"`
}
