package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shopkart/internal/auth"
	"shopkart/internal/handler"
)

func newRegisteredEcho() *echo.Echo {
	e := echo.New()
	Register(
		e,
		auth.NewJWTService("test-secret"),
		handler.NewAuthHandler(nil),
		handler.NewUserHandler(nil),
		handler.NewProductHandler(nil),
		handler.NewOrderHandler(nil),
		handler.NewPaymentHandler(nil),
	)
	return e
}

func TestRegister_TrailingSlashResolves(t *testing.T) {
	e := newRegisteredEcho()

	// Both spellings must reach the route. Without a token the auth gate
	// answers 401; a 404 would mean the path never resolved.
	for _, path := range []string{"/api/users", "/api/users/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "No token, authorization denied", "path %s", path)
	}
}

func TestRegister_PublicRoutesResolve(t *testing.T) {
	e := newRegisteredEcho()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Online Shopping Application Backend")
}
