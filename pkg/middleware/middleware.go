package middleware

import (
	"net/http"

	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"

	"github.com/labstack/echo/v4"
)

var queueCh chan struct{}

func InitMiddlewareConfig() {
	queueCh = make(chan struct{}, config.SysConfig.Server.QueueSize)
}

// QueueLimitMiddleware 限制并发处理的请求数，超出直接返回429。
// SSE长连接一旦占槽就不释放，流打满后所有接口都会被拒，因此直接放行
func QueueLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == consts.RouteNotificationStream {
			return next(c)
		}
		select {
		case queueCh <- struct{}{}:
			defer func() {
				<-queueCh
			}()
			return next(c)
		default:
			return c.JSON(http.StatusTooManyRequests, map[string]string{"msg": "server busy"})
		}
	}
}
