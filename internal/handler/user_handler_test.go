package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopkart/internal/auth"
	"shopkart/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateAddress(ctx context.Context, id uuid.UUID, address model.Address) (*model.User, error) {
	args := m.Called(ctx, id, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestUserHandler_Me(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	userID := uuid.New()

	mockSvc := new(MockUserService)
	mockSvc.On("GetProfile", mock.Anything, userID).Return(&model.User{
		ID:           userID,
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret-hash",
		Address:      model.BlankAddress(),
	}, nil)

	e := newTestEcho()
	e.GET("/api/users", NewUserHandler(mockSvc).Me, auth.Middleware(jwtService))

	token, err := jwtService.Issue(auth.Identity{ID: userID.String(), Name: "A"}, time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(auth.TokenHeader, token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user"`)
	assert.Contains(t, rec.Body.String(), `"a@x.com"`)
	// The password hash must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_UpdateAddress(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	userID := uuid.New()
	token, err := jwtService.Issue(auth.Identity{ID: userID.String(), Name: "A"}, time.Hour)
	assert.NoError(t, err)

	t.Run("replaces address", func(t *testing.T) {
		want := model.Address{
			Flat:     "12B",
			Street:   "High Street",
			Landmark: "Near the park",
			City:     "Springfield",
			State:    "IL",
			Country:  "USA",
			Pin:      "62704",
			Mobile:   "5551234567",
		}

		mockSvc := new(MockUserService)
		mockSvc.On("UpdateAddress", mock.Anything, userID, want).Return(&model.User{ID: userID, Name: "A", Address: want}, nil)

		e := newTestEcho()
		e.POST("/api/users/address", NewUserHandler(mockSvc).UpdateAddress, auth.Middleware(jwtService))

		body := `{"flat":"12B","street":"High Street","landmark":"Near the park","city":"Springfield","state":"IL","country":"USA","pin":"62704","mobile":"5551234567"}`
		req := httptest.NewRequest(http.MethodPost, "/api/users/address", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(auth.TokenHeader, token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Address Update Success")
		assert.Contains(t, rec.Body.String(), "Springfield")
		mockSvc.AssertExpectations(t)
	})

	t.Run("all eight fields required", func(t *testing.T) {
		e := newTestEcho()
		e.POST("/api/users/address", NewUserHandler(new(MockUserService)).UpdateAddress, auth.Middleware(jwtService))

		req := httptest.NewRequest(http.MethodPost, "/api/users/address", strings.NewReader(`{"flat":"12B"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(auth.TokenHeader, token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Street is Required")
		assert.Contains(t, rec.Body.String(), "Mobile is Required")
	})

	t.Run("no token", func(t *testing.T) {
		e := newTestEcho()
		e.POST("/api/users/address", NewUserHandler(new(MockUserService)).UpdateAddress, auth.Middleware(jwtService))

		req := httptest.NewRequest(http.MethodPost, "/api/users/address", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "No token, authorization denied")
	})
}
