package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"headset-lending-backend/internal/apperrors"
	"headset-lending-backend/internal/core/domain"
	"headset-lending-backend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupHeadsetRouter(projection *mockProjectionSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := newHeadsetHandler(projection)
	group := r.Group("/api/v1", testAuth("u1"))
	group.GET("/headsets", handler.listHeadsets)
	group.GET("/headsets/counts", handler.getCounts)
	group.GET("/headsets/:headsetID", handler.getHeadset)
	return r
}

func TestListHeadsets(t *testing.T) {
	projection := new(mockProjectionSvc)
	projection.On("ListHeadsets", mock.Anything).Return([]domain.Headset{
		{HeadsetID: "A", Label: "station A", IsAvailable: true},
		{HeadsetID: "B", Label: "station B", IsAvailable: false},
	}, nil)

	r := setupHeadsetRouter(projection)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/headsets", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListHeadsetsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Headsets, 2)
	assert.Equal(t, "A", resp.Headsets[0].HeadsetID)
	assert.True(t, resp.Headsets[0].IsAvailable)
	assert.False(t, resp.Headsets[1].IsAvailable)
}

func TestGetCounts(t *testing.T) {
	projection := new(mockProjectionSvc)
	projection.On("Counts", mock.Anything).Return(domain.HeadsetCounts{Total: 5, Available: 2, Unavailable: 3}, nil)

	r := setupHeadsetRouter(projection)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/headsets/counts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.CountsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.CountsResponse{Total: 5, Available: 2, Unavailable: 3}, resp)
}

func TestGetHeadset(t *testing.T) {
	projection := new(mockProjectionSvc)
	projection.On("GetHeadset", mock.Anything, "A").
		Return(&domain.Headset{HeadsetID: "A", Label: "station A", IsAvailable: true}, nil)

	r := setupHeadsetRouter(projection)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/headsets/A", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.HeadsetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.HeadsetID)
	assert.True(t, resp.IsAvailable)
}

func TestGetHeadset_NotFound(t *testing.T) {
	projection := new(mockProjectionSvc)
	projection.On("GetHeadset", mock.Anything, "Z").Return(nil, apperrors.ErrNotFound)

	r := setupHeadsetRouter(projection)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/headsets/Z", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHeadsets_StorageError(t *testing.T) {
	projection := new(mockProjectionSvc)
	projection.On("ListHeadsets", mock.Anything).
		Return(nil, apperrors.NewAppError(500, "query failed", errors.New("boom")))

	r := setupHeadsetRouter(projection)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/headsets", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
