//  Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http:www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package router

import (
	"eventmarket/internal/handler"
	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"

	"github.com/google/wire"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RouterProvider = wire.NewSet(NewHttpRouter)

type HttpRouter struct {
	echo                *echo.Echo
	sysHandler          *handler.SysHandler
	tagHandler          *handler.TagHandler
	notificationHandler *handler.NotificationHandler
}

func NewHttpRouter(echo *echo.Echo, sysHandler *handler.SysHandler, tagHandler *handler.TagHandler,
	notificationHandler *handler.NotificationHandler) *HttpRouter {
	r := &HttpRouter{
		echo:                echo,
		sysHandler:          sysHandler,
		tagHandler:          tagHandler,
		notificationHandler: notificationHandler,
	}
	r.initRouter()
	return r
}

func (r *HttpRouter) GetHandler() *echo.Echo {
	return r.echo
}

func (r *HttpRouter) initRouter() {
	// 系统信息
	r.echo.GET("/info", r.sysHandler.Info)
	if config.SysConfig.EnableMetric() {
		r.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
	r.tagRouter()          // 标签读写
	r.notificationRouter() // 通知列表
}

func (r *HttpRouter) tagRouter() {
	r.echo.POST("/api/v1/tags", r.tagHandler.CreateTagHandler)                // 主办方打标
	r.echo.POST("/api/v1/tags/:id/confirm", r.tagHandler.ConfirmTagHandler)   // 被标记方接受
	r.echo.DELETE("/api/v1/tags/:id", r.tagHandler.UntagHandler)              // 被标记方拒绝
	r.echo.GET("/api/v1/events/:eventId/tags", r.tagHandler.EventTagsHandler) // 事件维度标签列表
}

func (r *HttpRouter) notificationRouter() {
	r.echo.GET("/api/v1/notifications", r.notificationHandler.ListNotificationsHandler)
	r.echo.GET(consts.RouteNotificationStream, r.notificationHandler.StreamNotificationsHandler)
}
