package dto

import (
	"time"

	"headset-lending-backend/internal/core/domain"
)

// BorrowRequest is the body of a borrow call. HeadsetID is optional; when
// omitted the allocator picks an available unit.
type BorrowRequest struct {
	HeadsetID *string `json:"headsetID,omitempty" binding:"omitempty,resourceid"`
}

// ReturnRequest is the body of a return call.
type ReturnRequest struct {
	HeadsetID string `json:"headsetID" binding:"required,resourceid"`
}

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	ReservationID string     `json:"reservationID"`
	UserID        string     `json:"userID"`
	HeadsetID     string     `json:"headsetID"`
	Status        string     `json:"status"`
	RequestedAt   time.Time  `json:"requestedAt"`
	ReturnedAt    *time.Time `json:"returnedAt,omitempty"`
}

// ListReservationsParams bounds the recent-activity listing.
type ListReservationsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListReservationsResponse is one most-recent-first page of the history.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToReservationResponse converts a domain Reservation to its response DTO.
func ToReservationResponse(r domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		UserID:        r.UserID,
		HeadsetID:     r.HeadsetID,
		Status:        string(r.Status),
		RequestedAt:   r.RequestedAt,
		ReturnedAt:    r.ReturnedAt,
	}
}

// ToListReservationsResponse converts a page of domain Reservations.
func ToListReservationsResponse(rs []domain.Reservation, nextToken *string) *ListReservationsResponse {
	resp := &ListReservationsResponse{
		Reservations: make([]ReservationResponse, len(rs)),
		NextToken:    nextToken,
	}
	for i, r := range rs {
		resp.Reservations[i] = ToReservationResponse(r)
	}
	return resp
}
