package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmarket/internal/server"
	"eventmarket/pkg/app"
	"eventmarket/pkg/config"
	mylog "eventmarket/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	configPath string

	Name    = "eventmarket"
	Version = "1.0.0"
)

func init() {
	flag.StringVar(&configPath, "config", "config/config.yaml", "配置文件路径")
}

type App struct {
	httpServer *server.HTTPServer
}

func newApp(httpServer *server.HTTPServer) *App {
	return &App{
		httpServer: httpServer,
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Scan(configPath)
	if err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}
	mylog.InitLogger(cfg)
	defer zap.S().Sync()

	appInfo := app.NewInfo(uuid.NewString(), Name, Version)
	ctx, cancel := context.WithCancel(app.NewContext(context.Background(), appInfo))
	defer cancel()

	application, cleanup, err := initApp(cfg)
	if err != nil {
		zap.S().Fatalf("初始化失败: %v", err)
	}
	defer cleanup()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return application.httpServer.Start(ctx)
	})
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigChan:
			zap.S().Infof("received signal: %s, shutting down", sig.String())
			cancel()
		case <-ctx.Done():
		}
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		return application.httpServer.Stop(stopCtx)
	})
	if err := g.Wait(); err != nil {
		zap.S().Errorf("server exit: %v", err)
	}
}
