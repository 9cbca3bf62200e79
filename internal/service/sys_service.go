package service

import (
	"context"
	"sync"
	"time"

	"eventmarket/internal/feed"
	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var once sync.Once

type SysService struct {
	bus *feed.Bus
}

func NewSysService(bus *feed.Bus) *SysService {
	sysSvc := &SysService{
		bus: bus,
	}
	once.Do(
		func() {
			if config.SysConfig.GetEnableResync() {
				go sysSvc.startResync()
			}
		})
	return sysSvc
}

// 定时广播sync事件，长连接的订阅端整体重算一次，兜底偶发丢失的pubsub投递
func (s SysService) startResync() {
	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(config.SysConfig.GetResyncCron(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.bus.Publish(ctx, &feed.ChangeEvent{Kind: consts.ChangeSync}); err != nil {
			zap.S().Errorf("cron exec resync err: %v", err)
		}
	})
	if err != nil {
		zap.S().Errorf("添加Resync任务失败: %v", err)
		return
	}
	c.Start()
	defer c.Stop()
	select {}
}
