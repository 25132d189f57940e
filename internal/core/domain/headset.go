package domain

import "time"

// Headset represents one lendable unit of the pool.
// Provisioned out of band; only the allocator flips IsAvailable, and it must
// always equal "no borrowed reservation references this unit".
type Headset struct {
	HeadsetID   string    `json:"headsetID"`
	Label       string    `json:"label"` // display name, e.g. the station it lives at
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HeadsetCounts is the aggregate availability view of the pool.
type HeadsetCounts struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
}
