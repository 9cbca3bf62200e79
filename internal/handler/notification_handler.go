package handler

import (
	"fmt"
	"net/http"

	"eventmarket/internal/service"
	"eventmarket/pkg/consts"
	"eventmarket/pkg/util"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotificationsHandler 一次性快照，角标和下拉列表用
func (handler *NotificationHandler) ListNotificationsHandler(c echo.Context) error {
	profileId := c.Request().Header.Get(consts.HeaderProfileId)
	if profileId == "" {
		return util.ErrorRequestParam(c)
	}
	return util.ResponseData(c, handler.notificationService.Snapshot(profileId))
}

// StreamNotificationsHandler SSE长连接：先推一帧当前快照，tags表每次
// 变更投递后再推新快照，客户端断开即释放订阅
func (handler *NotificationHandler) StreamNotificationsHandler(c echo.Context) error {
	profileId := c.Request().Header.Get(consts.HeaderProfileId)
	if profileId == "" {
		return util.ErrorRequestParam(c)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	handle := handler.notificationService.SubscribeFeed(c.Request().Context(), profileId)
	defer handle.Close()

	for snapshot := range handle.Snapshots() {
		payload, err := sonic.Marshal(snapshot)
		if err != nil {
			zap.S().Errorf("序列化通知快照失败：%v", err)
			continue
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			// 客户端已断开
			return nil
		}
		resp.Flush()
	}
	return nil
}
