package dao

import (
	"errors"

	"eventmarket/internal/data"
	"eventmarket/internal/model"
	"eventmarket/pkg/config"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EventDao struct {
	baseData *data.BaseData
	cache    *gocache.Cache
}

func NewEventDao(data *data.BaseData) *EventDao {
	return &EventDao{
		baseData: data,
		cache:    gocache.New(config.SysConfig.GetDefaultExpiration(), config.SysConfig.GetCleanupInterval()),
	}
}

// GetById 事件名称和日期只做展示，带TTL缓存，减少通知列表反复解析时的查询
func (d *EventDao) GetById(eventId string) (*model.Event, error) {
	if cached, ok := d.cache.Get(eventId); ok {
		return cached.(*model.Event), nil
	}

	var event model.Event
	err := d.baseData.BizDB.Table(model.TableNameEvent).Where("id = ?", eventId).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		zap.S().Errorf("查询事件[id=%s]失败：%v", eventId, err)
		return nil, err
	}
	d.cache.Set(eventId, &event, gocache.DefaultExpiration)
	return &event, nil
}
