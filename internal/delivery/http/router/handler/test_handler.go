package handler

import (
	"net/http"

	"privy/internal/delivery/http/response"
	domainerrors "privy/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestPublicEndpoint tests a public endpoint
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]interface{}{
		"message": "Public endpoint test successful",
		"status":  "public",
	}, "Public endpoint test successful")
}

// TestErrorEndpoint tests the error middleware by returning a domain error
func (h *TestHandler) TestErrorEndpoint(c echo.Context) error {
	return domainerrors.ErrNotFound
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
