package domain

import "time"

type Doctor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	CreatedOn time.Time `json:"created_on"`
}
