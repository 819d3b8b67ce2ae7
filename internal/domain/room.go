package domain

import "time"

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "AVAILABLE"
	RoomStatusOccupied  RoomStatus = "OCCUPIED"
)

// Room occupancy status is owned by the stay manager; a room is OCCUPIED
// iff exactly one active stay references it.
type Room struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Class             string     `json:"class"`
	TariffPerDayMinor int64      `json:"tariff_per_day_minor"`
	Status            RoomStatus `json:"status"`
	CreatedOn         time.Time  `json:"created_on"`
	UpdatedOn         time.Time  `json:"updated_on"`
}
