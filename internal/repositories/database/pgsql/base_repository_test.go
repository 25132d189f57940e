package pgsql

import (
	"context"
	"errors"
	"testing"

	"headset-lending-backend/internal/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, wantTransient: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, wantTransient: true},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, wantTransient: true},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, wantTransient: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, wantTransient: true},
		{name: "unique violation stays internal", err: &pgconn.PgError{Code: "23505"}, wantTransient: false},
		{name: "plain error stays internal", err: errors.New("boom"), wantTransient: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError("op failed", tt.err)
			require.Error(t, got)
			if tt.wantTransient {
				assert.True(t, errors.Is(got, apperrors.ErrTransient))
				code, ok := apperrors.RejectionCodeOf(got)
				require.True(t, ok)
				assert.Equal(t, apperrors.CodeStorageUnavailable, code)
				return
			}
			assert.False(t, errors.Is(got, apperrors.ErrTransient))
			var appErr *apperrors.AppError
			assert.True(t, errors.As(got, &appErr))
		})
	}
}
