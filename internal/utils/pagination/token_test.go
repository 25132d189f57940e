package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	requestedAt := time.Date(2025, 11, 3, 14, 30, 15, 123456789, time.UTC)
	reservationID := "6f1c2d9e-0b7a-4f4e-9f0a-8a4a9a1c2d3e"

	token := EncodeToken(requestedAt, reservationID)
	require.NotEmpty(t, token)

	gotTime, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, requestedAt.Equal(gotTime))
	assert.Equal(t, reservationID, gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!not-base64!!"},
		{"missing separator", "bm8tc2VwYXJhdG9y"},                 // "no-separator"
		{"bad timestamp", "bm90LWEtdGltZXxyZXNlcnZhdGlvbi1pZA=="}, // "not-a-time|reservation-id"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
