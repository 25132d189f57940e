package mapping

import (
	"headset-lending-backend/internal/core/domain"
	"headset-lending-backend/internal/models"
)

// ToDomainHeadset converts a model Headset to a domain Headset
func ToDomainHeadset(m models.Headset) domain.Headset {
	return domain.Headset{
		HeadsetID:   m.HeadsetID,
		Label:       m.Label,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainHeadsetSlice converts a slice of model Headsets to domain Headsets
func ToDomainHeadsetSlice(ms []models.Headset) []domain.Headset {
	out := make([]domain.Headset, len(ms))
	for i, m := range ms {
		out[i] = ToDomainHeadset(m)
	}
	return out
}
