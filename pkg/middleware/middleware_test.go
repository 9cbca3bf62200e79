package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueueLimitedEcho(t *testing.T, queueSize int) *echo.Echo {
	t.Helper()
	config.SysConfig = &config.Config{}
	config.SysConfig.SetDefaults()
	config.SysConfig.Server.QueueSize = queueSize
	InitMiddlewareConfig()

	e := echo.New()
	e.Use(QueueLimitMiddleware)
	return e
}

func TestQueueLimitRejectsWhenFull(t *testing.T) {
	e := newQueueLimitedEcho(t, 1)

	started := make(chan struct{})
	release := make(chan struct{})
	var startedOnce sync.Once
	e.POST("/api/v1/tags", func(c echo.Context) error {
		startedOnce.Do(func() { close(started) })
		<-release
		return c.NoContent(http.StatusOK)
	})

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tags", nil))
		firstDone <- rec
	}()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("第一个请求未进入处理")
	}

	// 唯一槽位被占，后续请求直接429
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tags", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	close(release)
	select {
	case first := <-firstDone:
		assert.Equal(t, http.StatusOK, first.Code)
	case <-time.After(3 * time.Second):
		t.Fatal("第一个请求未结束")
	}

	// 槽位释放后恢复服务
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tags", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// 长连接的通知流不占队列槽位：即使流挂着不放，普通接口也不能被挤成429
func TestQueueLimitSkipsNotificationStream(t *testing.T) {
	e := newQueueLimitedEcho(t, 1)

	started := make(chan struct{})
	release := make(chan struct{})
	e.GET(consts.RouteNotificationStream, func(c echo.Context) error {
		close(started)
		<-release
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/v1/tags", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	streamDone := make(chan struct{})
	go func() {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, consts.RouteNotificationStream, nil))
		close(streamDone)
	}()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("通知流未进入处理")
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tags", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	close(release)
	select {
	case <-streamDone:
	case <-time.After(3 * time.Second):
		t.Fatal("通知流未结束")
	}
}
