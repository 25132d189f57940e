package mapping

import (
	"headset-lending-backend/internal/core/domain"
	"headset-lending-backend/internal/models"
)

// ToModelReservation converts a domain Reservation to a model Reservation
func ToModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID: d.ReservationID,
		UserID:        d.UserID,
		HeadsetID:     d.HeadsetID,
		Status:        models.ReservationStatus(d.Status),
		RequestedAt:   d.RequestedAt,
		ReturnedAt:    d.ReturnedAt,
	}
}

// ToDomainReservation converts a model Reservation to a domain Reservation
func ToDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		UserID:        m.UserID,
		HeadsetID:     m.HeadsetID,
		Status:        domain.ReservationStatus(m.Status),
		RequestedAt:   m.RequestedAt,
		ReturnedAt:    m.ReturnedAt,
	}
}

// ToDomainReservationSlice converts a slice of model Reservations to domain Reservations
func ToDomainReservationSlice(ms []models.Reservation) []domain.Reservation {
	out := make([]domain.Reservation, len(ms))
	for i, m := range ms {
		out[i] = ToDomainReservation(m)
	}
	return out
}
