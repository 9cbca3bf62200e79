package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventmarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 缺少X-Profile-Id直接400，不会触达数据层
func TestListNotificationsMissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewNotificationHandler(service.NewNotificationService(nil, nil, nil, nil, nil, nil))
	require.NoError(t, h.ListNotificationsHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamNotificationsMissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/stream", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewNotificationHandler(service.NewNotificationService(nil, nil, nil, nil, nil, nil))
	require.NoError(t, h.StreamNotificationsHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
