package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runLogged(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var loggedID string
	handler := Logger(func(c echo.Context) error {
		loggedID = c.Response().Header().Get(RequestIDHeader)
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	assert.NoError(t, err)

	return rec, loggedID
}

func TestLoggerGeneratesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)

	rec, loggedID := runLogged(t, req)

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), loggedID)
}

func TestLoggerKeepsCallerRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")

	rec, _ := runLogged(t, req)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get(RequestIDHeader))
}
