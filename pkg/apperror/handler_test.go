package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, method string, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/api/catalog/unknown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(slog.Default())(err, c)

	if rec.Body.Len() == 0 {
		return rec, nil
	}
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp["error"].(map[string]any)
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec, errObj := serve(t, http.MethodGet, ErrUnknownCatalog)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_catalog", errObj["code"])
	assert.Equal(t, "Unknown catalog kind", errObj["message"])
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"not found", http.StatusNotFound, "not_found"},
		{"bad request", http.StatusBadRequest, "bad_request"},
		{"method not allowed", http.StatusMethodNotAllowed, "method_not_allowed"},
		{"rate limited", http.StatusTooManyRequests, "rate_limited"},
		{"teapot", http.StatusTeapot, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, errObj := serve(t, http.MethodGet, echo.NewHTTPError(tt.status, "test message"))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantCode, errObj["code"])
			assert.Equal(t, "test message", errObj["message"])
		})
	}
}

func TestHTTPErrorHandler_PlainErrorIsInternal(t *testing.T) {
	rec, errObj := serve(t, http.MethodGet, errors.New("secret cause"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errObj["code"])
	assert.NotContains(t, errObj["message"], "secret")
}

func TestHTTPErrorHandler_HeadRequest(t *testing.T) {
	rec, errObj := serve(t, http.MethodHead, NewNotFound("solution", "7"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, errObj)
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Response().WriteHeader(http.StatusOK)
	_, _ = c.Response().Write([]byte("already written"))

	HTTPErrorHandler(slog.Default())(NewBadRequest("should not appear"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already written", rec.Body.String())
}
