package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"headset-lending-backend/internal/apperrors"
	"headset-lending-backend/internal/core/domain"
	portssvc "headset-lending-backend/internal/core/ports/services"
	"headset-lending-backend/internal/dto"
	"headset-lending-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAllocatorSvc struct {
	mock.Mock
}

var _ portssvc.AllocatorSvcFacade = (*mockAllocatorSvc)(nil)

func (m *mockAllocatorSvc) Borrow(ctx context.Context, userID string, headsetID *string) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, headsetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *mockAllocatorSvc) Return(ctx context.Context, userID string, headsetID string) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, headsetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type mockProjectionSvc struct {
	mock.Mock
}

var _ portssvc.ProjectionSvcFacade = (*mockProjectionSvc)(nil)

func (m *mockProjectionSvc) ListHeadsets(ctx context.Context) ([]domain.Headset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Headset), args.Error(1)
}

func (m *mockProjectionSvc) GetHeadset(ctx context.Context, headsetID string) (*domain.Headset, error) {
	args := m.Called(ctx, headsetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Headset), args.Error(1)
}

func (m *mockProjectionSvc) Counts(ctx context.Context) (domain.HeadsetCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HeadsetCounts), args.Error(1)
}

func (m *mockProjectionSvc) ListRecentReservations(ctx context.Context, params dto.ListReservationsParams) (*dto.ListReservationsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListReservationsResponse), args.Error(1)
}

func (m *mockProjectionSvc) ActiveReservation(ctx context.Context, userID string) (*domain.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

// testAuth injects the given user into the request context the way
// AuthMiddleware does after validating a token. Empty userID simulates an
// unauthenticated request slipping past the middleware.
func testAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(middleware.WithUserID(c.Request.Context(), userID))
		}
		c.Next()
	}
}

func setupReservationRouter(userID string, allocator *mockAllocatorSvc, projection *mockProjectionSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()

	r := gin.New()
	handler := newReservationHandler(allocator, projection)
	group := r.Group("/api/v1", testAuth(userID))
	group.GET("/requests", handler.listRecentReservations)
	group.GET("/requests/active", handler.getActiveReservation)
	group.POST("/requests/borrow", handler.borrowHeadset)
	group.POST("/requests/return", handler.returnHeadset)
	return r
}

func doJSON(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBorrowHeadset_AutoSelect(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	reservation := &domain.Reservation{
		ReservationID: "r1",
		UserID:        "u1",
		HeadsetID:     "A",
		Status:        domain.Borrowed,
		RequestedAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	allocator.On("Borrow", mock.Anything, "u1", (*string)(nil)).Return(reservation, nil)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodPost, "/api/v1/requests/borrow", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ReservationID)
	assert.Equal(t, "A", resp.HeadsetID)
	assert.Equal(t, "borrowed", resp.Status)
	allocator.AssertExpectations(t)
}

func TestBorrowHeadset_SpecificUnit(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	reservation := &domain.Reservation{ReservationID: "r1", UserID: "u1", HeadsetID: "B", Status: domain.Borrowed}
	allocator.On("Borrow", mock.Anything, "u1", mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == "B"
	})).Return(reservation, nil)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodPost, "/api/v1/requests/borrow", []byte(`{"headsetID":"B"}`))

	require.Equal(t, http.StatusOK, w.Code)
	allocator.AssertExpectations(t)
}

func TestBorrowHeadset_RejectionStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "pool exhausted",
			err:        apperrors.NewRejection(apperrors.CodeNoUnitsAvailable, apperrors.ErrConflict, "no headsets available"),
			wantStatus: http.StatusConflict,
			wantCode:   "NO_UNITS_AVAILABLE",
		},
		{
			name:       "already holding",
			err:        apperrors.NewRejection(apperrors.CodeBorrowerAlreadyHolds, apperrors.ErrConflict, "you already hold headset A"),
			wantStatus: http.StatusConflict,
			wantCode:   "BORROWER_ALREADY_HOLDS",
		},
		{
			name:       "daily limit",
			err:        apperrors.NewRejection(apperrors.CodePolicyWindowExceeded, apperrors.ErrPolicyViolation, "you have already booked a headset today"),
			wantStatus: http.StatusForbidden,
			wantCode:   "POLICY_WINDOW_EXCEEDED",
		},
		{
			name:       "unknown unit",
			err:        apperrors.NewRejection(apperrors.CodeUnitNotFound, apperrors.ErrNotFound, "headset Z does not exist"),
			wantStatus: http.StatusNotFound,
			wantCode:   "UNIT_NOT_FOUND",
		},
		{
			name:       "storage down",
			err:        apperrors.NewRejection(apperrors.CodeStorageUnavailable, apperrors.ErrTransient, "storage unavailable"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "STORAGE_UNAVAILABLE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocator := new(mockAllocatorSvc)
			projection := new(mockProjectionSvc)
			allocator.On("Borrow", mock.Anything, "u1", (*string)(nil)).Return(nil, tt.err)

			r := setupReservationRouter("u1", allocator, projection)
			w := doJSON(r, http.MethodPost, "/api/v1/requests/borrow", nil)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestBorrowHeadset_InvalidHeadsetID(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodPost, "/api/v1/requests/borrow", []byte(`{"headsetID":"not valid!"}`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	allocator.AssertNotCalled(t, "Borrow", mock.Anything, mock.Anything, mock.Anything)
}

func TestBorrowHeadset_Unauthenticated(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)

	r := setupReservationRouter("", allocator, projection)
	w := doJSON(r, http.MethodPost, "/api/v1/requests/borrow", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReturnHeadset_Success(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	returnedAt := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	reservation := &domain.Reservation{
		ReservationID: "r1",
		UserID:        "u1",
		HeadsetID:     "A",
		Status:        domain.Returned,
		RequestedAt:   returnedAt.Add(-8 * time.Hour),
		ReturnedAt:    &returnedAt,
	}
	allocator.On("Return", mock.Anything, "u1", "A").Return(reservation, nil)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodPost, "/api/v1/requests/return", []byte(`{"headsetID":"A"}`))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "returned", resp.Status)
	require.NotNil(t, resp.ReturnedAt)
	assert.True(t, resp.ReturnedAt.Equal(returnedAt))
	allocator.AssertExpectations(t)
}

func TestReturnHeadset_MissingBody(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodPost, "/api/v1/requests/return", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	allocator.AssertNotCalled(t, "Return", mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnHeadset_NoActiveReservation(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	allocator.On("Return", mock.Anything, "u1", "A").
		Return(nil, apperrors.NewRejection(apperrors.CodeNoActiveReservation, apperrors.ErrConflict,
			"no active booking found for this user and headset"))

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodPost, "/api/v1/requests/return", []byte(`{"headsetID":"A"}`))

	require.Equal(t, http.StatusConflict, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NO_ACTIVE_RESERVATION", resp.Code)
}

func TestListRecentReservations(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	token := "next-page"
	page := &dto.ListReservationsResponse{
		Reservations: []dto.ReservationResponse{
			{ReservationID: "r2", Status: "borrowed"},
			{ReservationID: "r1", Status: "returned"},
		},
		NextToken: &token,
	}
	projection.On("ListRecentReservations", mock.Anything, dto.ListReservationsParams{Limit: 2}).Return(page, nil)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodGet, "/api/v1/requests?limit=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListReservationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, "r2", resp.Reservations[0].ReservationID)
	require.NotNil(t, resp.NextToken)
	assert.Equal(t, token, *resp.NextToken)
	projection.AssertExpectations(t)
}

func TestListRecentReservations_BadToken(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	badToken := "garbage"
	projection.On("ListRecentReservations", mock.Anything, dto.ListReservationsParams{NextToken: &badToken}).
		Return(nil, apperrors.NewAppError(400, "invalid pagination token", apperrors.ErrValidation))

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodGet, "/api/v1/requests?nextToken=garbage", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetActiveReservation(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	reservation := &domain.Reservation{ReservationID: "r1", UserID: "u1", HeadsetID: "A", Status: domain.Borrowed}
	projection.On("ActiveReservation", mock.Anything, "u1").Return(reservation, nil)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodGet, "/api/v1/requests/active", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.HeadsetID)
}

func TestGetActiveReservation_None(t *testing.T) {
	allocator := new(mockAllocatorSvc)
	projection := new(mockProjectionSvc)
	projection.On("ActiveReservation", mock.Anything, "u1").Return(nil, apperrors.ErrNotFound)

	r := setupReservationRouter("u1", allocator, projection)
	w := doJSON(r, http.MethodGet, "/api/v1/requests/active", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}
