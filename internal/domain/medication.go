package domain

import "time"

// Medication is catalog reference data; Stock is the only field the core
// mutates, and only through the stock ledger's conditional updates.
type Medication struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	UnitPriceMinor int64     `json:"unit_price_minor"` // minor currency units
	Stock          int32     `json:"stock"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}
