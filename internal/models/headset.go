package models

import "time"

// Headset is the database representation of a lendable unit.
type Headset struct {
	HeadsetID   string    `db:"headset_id"`
	Label       string    `db:"label"`
	IsAvailable bool      `db:"is_available"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
