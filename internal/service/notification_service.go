package service

import (
	"context"
	"time"

	"eventmarket/internal/dao"
	"eventmarket/internal/feed"
	"eventmarket/internal/model"
	"eventmarket/internal/model/dto"
	"eventmarket/internal/model/query"
	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"
	"eventmarket/pkg/prom"

	"github.com/young2j/gocopy"
	"go.uber.org/zap"
)

type NotificationService struct {
	profileDao  *dao.ProfileDao
	venueDao    *dao.VenueDao
	supplierDao *dao.SupplierDao
	tagDao      *dao.TagDao
	eventDao    *dao.EventDao
	bus         *feed.Bus
}

func NewNotificationService(profileDao *dao.ProfileDao, venueDao *dao.VenueDao, supplierDao *dao.SupplierDao,
	tagDao *dao.TagDao, eventDao *dao.EventDao, bus *feed.Bus) *NotificationService {
	return &NotificationService{
		profileDao:  profileDao,
		venueDao:    venueDao,
		supplierDao: supplierDao,
		tagDao:      tagDao,
		eventDao:    eventDao,
		bus:         bus,
	}
}

// ResolveFeed 把当前用户映射到其名下实体，再查相关标签。
// 任何一步失败都降级为空列表并记日志，绝不向调用方抛错
func (s *NotificationService) ResolveFeed(profileId string) []*dto.TagNotification {
	empty := make([]*dto.TagNotification, 0)

	profile, err := s.profileDao.GetById(profileId)
	if err != nil {
		return empty
	}
	if profile == nil {
		zap.S().Debugf("用户档案[id=%s]不存在，通知列表为空", profileId)
		return empty
	}

	var tags []*model.Tag
	switch profile.Role {
	case consts.RoleVenueManager:
		venues, err := s.venueDao.ListByCompanyId(profileId)
		if err != nil || len(venues) == 0 {
			return empty
		}
		venueIds := make([]string, 0, len(venues))
		for _, venue := range venues {
			venueIds = append(venueIds, venue.ID)
		}
		// 场馆侧：已确认和未确认的标签都展示
		tags, err = s.tagDao.TagListByCondition(&query.TagQuery{
			EntityType:     string(consts.EntityTypeVenue),
			EntityIds:      venueIds,
			OrderByCreated: true,
		})
		if err != nil {
			return empty
		}
	case consts.RoleSupplier:
		supplier, err := s.supplierDao.GetByCompanyId(profileId)
		if err != nil || supplier == nil {
			return empty
		}
		// 供应商侧沿用线上行为：只展示未确认的标签，与场馆侧不对称，待产品确认
		tags, err = s.tagDao.TagListByCondition(&query.TagQuery{
			EntityType:      string(consts.EntityTypeSupplier),
			EntityIds:       []string{supplier.ID},
			OnlyUnconfirmed: true,
			OrderByCreated:  true,
		})
		if err != nil {
			return empty
		}
	default:
		return empty
	}
	prom.FeedResolveCounter.WithLabelValues(profile.Role).Inc()

	notifications := make([]*dto.TagNotification, 0, len(tags))
	for _, tag := range tags {
		notification := &dto.TagNotification{}
		gocopy.Copy(&notification.Tag, tag)
		// 事件名称和日期只做卡片展示，查不到也不影响通知本身
		event, err := s.eventDao.GetById(tag.EventId)
		if err == nil && event != nil {
			notification.EventName = event.Name
			notification.EventDate = event.Date.Format("2006-01-02")
		}
		notifications = append(notifications, notification)
	}
	return notifications
}

func (s *NotificationService) Snapshot(profileId string) *dto.FeedSnapshot {
	notifications := s.ResolveFeed(profileId)
	return &dto.FeedSnapshot{
		Notifications: notifications,
		Count:         len(notifications),
	}
}

// SubscribeFeed 打开一条订阅：先推一帧初始快照，之后每收到一次变更事件
// 就整体重算再推新快照。immediate策略逐事件重算，debounce策略在窗口内
// 合并连续事件后只算一次
func (s *NotificationService) SubscribeFeed(ctx context.Context, profileId string) *FeedHandle {
	sub := s.bus.Subscribe(ctx)
	handle := &FeedHandle{
		snapshots: make(chan *dto.FeedSnapshot, 4),
		sub:       sub,
	}
	go s.run(ctx, profileId, sub, handle)
	return handle
}

type FeedHandle struct {
	snapshots chan *dto.FeedSnapshot
	sub       *feed.Subscription
}

func (h *FeedHandle) Snapshots() <-chan *dto.FeedSnapshot {
	return h.snapshots
}

func (h *FeedHandle) Close() {
	h.sub.Close()
}

func (s *NotificationService) run(ctx context.Context, profileId string, sub *feed.Subscription, handle *FeedHandle) {
	defer close(handle.snapshots)

	// 视图关闭后迟到的重算结果直接丢弃
	push := func(snapshot *dto.FeedSnapshot) bool {
		select {
		case handle.snapshots <- snapshot:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !push(s.Snapshot(profileId)) {
		return
	}

	debounce := config.SysConfig.GetFeedPolicy() == consts.FeedPolicyDebounce
	window := config.SysConfig.GetFeedDebounce()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.Events():
			if !ok {
				return
			}
			closed := false
			if debounce {
				closed = s.drain(ctx, sub, window)
			}
			if !push(s.Snapshot(profileId)) {
				return
			}
			if closed {
				return
			}
		}
	}
}

// drain 在窗口期内吞掉后续事件，返回订阅是否已经关闭
func (s *NotificationService) drain(ctx context.Context, sub *feed.Subscription, window time.Duration) bool {
	timer := time.NewTimer(window)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return false
		case <-ctx.Done():
			return true
		case _, ok := <-sub.Events():
			if !ok {
				return true
			}
		}
	}
}
