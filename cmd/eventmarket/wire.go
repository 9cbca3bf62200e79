//go:build wireinject
// +build wireinject

package main

import (
	"eventmarket/internal/dao"
	"eventmarket/internal/data"
	"eventmarket/internal/feed"
	"eventmarket/internal/handler"
	"eventmarket/internal/router"
	"eventmarket/internal/server"
	"eventmarket/internal/service"
	"eventmarket/pkg/config"

	"github.com/google/wire"
)

func initApp(*config.Config) (*App, func(), error) {
	panic(wire.Build(
		data.BaseDataProvider,
		feed.FeedProvider,
		dao.DaoProvider,
		service.ServiceProvider,
		handler.HandlerProvider,
		router.RouterProvider,
		server.ServerProvider,
		newApp,
	))
}
