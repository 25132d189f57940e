package dto

import (
	"time"

	"headset-lending-backend/internal/core/domain"
)

// HeadsetResponse defines the data returned for a single headset.
type HeadsetResponse struct {
	HeadsetID   string `json:"headsetID"`
	Label       string `json:"label"`
	IsAvailable bool   `json:"isAvailable"`
}

// ListHeadsetsResponse wraps the full pool listing.
type ListHeadsetsResponse struct {
	Headsets []HeadsetResponse `json:"headsets"`
}

// CountsResponse mirrors domain.HeadsetCounts on the wire.
type CountsResponse struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
}

// ToHeadsetResponse converts a domain Headset to its response DTO.
func ToHeadsetResponse(h domain.Headset) HeadsetResponse {
	return HeadsetResponse{
		HeadsetID:   h.HeadsetID,
		Label:       h.Label,
		IsAvailable: h.IsAvailable,
	}
}

// ToListHeadsetsResponse converts a slice of domain Headsets.
func ToListHeadsetsResponse(hs []domain.Headset) ListHeadsetsResponse {
	out := ListHeadsetsResponse{Headsets: make([]HeadsetResponse, len(hs))}
	for i, h := range hs {
		out.Headsets[i] = ToHeadsetResponse(h)
	}
	return out
}

// EventResponse is the wire shape of a fan-out event, also used for
// documentation of the websocket payload.
type EventResponse struct {
	Type       string    `json:"type"`
	UnitID     string    `json:"unitId"`
	BorrowerID string    `json:"borrowerId"`
	At         time.Time `json:"at"`
}
