package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/hsolorzn/finve_backend/internal/handlers"
	"github.com/hsolorzn/finve_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateService struct {
	snap domain.RateSnapshot
}

func (s *stubRateService) GetRates(ctx context.Context) domain.RateSnapshot {
	return s.snap
}

func TestGetRates_ReturnsSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := "test-secret-key-that-is-long-enough"

	router := gin.New()
	router.Use(middleware.AuthMiddleware(secret))
	v1 := router.Group("/api/v1")
	handlers.RegisterRateRoutes(v1, &stubRateService{snap: domain.RateSnapshot{
		BCV:        decimal.RequireFromString("341.74"),
		Euro:       decimal.RequireFromString("395.0"),
		USDT:       decimal.RequireFromString("500.0"),
		UpdatedAt:  time.Now().UTC(),
		IsFallback: true,
	}})

	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.RateSnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.BCV.Equal(decimal.RequireFromString("341.74")))
	assert.True(t, resp.IsFallback, "fallback flag must survive serialization")
}
