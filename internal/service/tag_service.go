package service

import (
	"context"
	"fmt"
	"time"

	"eventmarket/internal/dao"
	"eventmarket/internal/feed"
	"eventmarket/internal/model"
	"eventmarket/internal/model/dto"
	"eventmarket/internal/model/query"
	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"
	myerr "eventmarket/pkg/error"
	"eventmarket/pkg/prom"
	"eventmarket/pkg/util"

	"github.com/young2j/gocopy"
	"go.uber.org/zap"
)

type TagService struct {
	tagDao      *dao.TagDao
	venueDao    *dao.VenueDao
	supplierDao *dao.SupplierDao
	bus         *feed.Bus
}

func NewTagService(tagDao *dao.TagDao, venueDao *dao.VenueDao, supplierDao *dao.SupplierDao, bus *feed.Bus) *TagService {
	return &TagService{
		tagDao:      tagDao,
		venueDao:    venueDao,
		supplierDao: supplierDao,
		bus:         bus,
	}
}

// TagEntity 主办方给场馆或供应商打标，初始为未确认状态。
// 入库成功后广播insert事件并尽力发一封通知邮件
func (t *TagService) TagEntity(req *query.TagCreateReq) (*dto.Tag, error) {
	entity, err := model.ParseTaggedEntity(req.TaggedEntityType, req.TaggedEntityId)
	if err != nil {
		return nil, err
	}
	if req.EventId == "" {
		return nil, myerr.BadRequest("事件id不能为空")
	}
	if req.TaggedBy == "" {
		return nil, myerr.BadRequest("标记人不能为空")
	}

	entityType, entityId := entity.Columns()
	tag := &model.Tag{
		EventId:          req.EventId,
		TaggedEntityId:   entityId,
		TaggedEntityType: entityType,
		TaggedBy:         req.TaggedBy,
		IsConfirmed:      false,
	}
	if err := t.tagDao.Create(tag); err != nil {
		return nil, err
	}
	prom.TagMutationCounter.WithLabelValues("tag").Inc()
	t.publish(consts.ChangeInsert, tag)
	go t.sendNotification(entity, tag.EventId)

	tagDTO := &dto.Tag{}
	gocopy.Copy(tagDTO, tag)
	return tagDTO, nil
}

// ConfirmTag 被标记方接受标记
func (t *TagService) ConfirmTag(tagId string) (*dto.Tag, error) {
	tag, err := t.tagDao.Confirm(tagId)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, myerr.NotFound(fmt.Sprintf("标签[id=%s]不存在", tagId))
	}
	prom.TagMutationCounter.WithLabelValues("confirm").Inc()
	t.publish(consts.ChangeUpdate, tag)

	tagDTO := &dto.Tag{}
	gocopy.Copy(tagDTO, tag)
	return tagDTO, nil
}

// UntagEntity 被标记方拒绝标记，直接删行
func (t *TagService) UntagEntity(tagId string) error {
	deleted, err := t.tagDao.Delete(tagId)
	if err != nil {
		return err
	}
	if !deleted {
		return myerr.NotFound(fmt.Sprintf("标签[id=%s]不存在", tagId))
	}
	prom.TagMutationCounter.WithLabelValues("untag").Inc()
	t.publish(consts.ChangeDelete, &model.Tag{ID: tagId})
	return nil
}

// FetchEventTags 单个事件的所有标签，附带被标记方展示名，不保证顺序
func (t *TagService) FetchEventTags(eventId string) ([]*dto.TagWithName, error) {
	tags, err := t.tagDao.TagListByCondition(&query.TagQuery{EventId: eventId})
	if err != nil {
		return nil, err
	}

	var venueIds, supplierIds []string
	for _, tag := range tags {
		if tag.TaggedEntityType == string(consts.EntityTypeVenue) {
			venueIds = append(venueIds, tag.TaggedEntityId)
		} else {
			supplierIds = append(supplierIds, tag.TaggedEntityId)
		}
	}

	nameMap := make(map[string]string, len(tags))
	venues, err := t.venueDao.ListByIds(venueIds)
	if err != nil {
		return nil, err
	}
	for _, venue := range venues {
		nameMap[string(consts.EntityTypeVenue)+":"+venue.ID] = venue.Name
	}
	suppliers, err := t.supplierDao.ListByIds(supplierIds)
	if err != nil {
		return nil, err
	}
	for _, supplier := range suppliers {
		nameMap[string(consts.EntityTypeSupplier)+":"+supplier.ID] = supplier.Name
	}

	result := make([]*dto.TagWithName, 0, len(tags))
	for _, tag := range tags {
		item := &dto.TagWithName{}
		gocopy.Copy(&item.Tag, tag)
		item.TaggedEntityName = nameMap[tag.TaggedEntityType+":"+tag.TaggedEntityId]
		result = append(result, item)
	}
	return result, nil
}

// publish 写库已提交，广播失败只记日志，不回滚也不向上抛
func (t *TagService) publish(kind string, tag *model.Tag) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := t.bus.Publish(ctx, &feed.ChangeEvent{Kind: kind, Tag: tag}); err != nil {
		zap.S().Errorf("广播标签变更[kind=%s, id=%s]失败：%v", kind, tag.ID, err)
	}
}

// sendNotification 给被标记方发邮件通知，至多投递一次，失败吞掉
func (t *TagService) sendNotification(entity model.TaggedEntity, eventId string) {
	cfg := config.SysConfig
	if cfg.Notify.WebhookURL == "" {
		return
	}

	var email, name string
	if entity.IsVenue() {
		venues, err := t.venueDao.ListByIds([]string{entity.Id()})
		if err != nil || len(venues) == 0 {
			zap.S().Warnf("查询场馆[id=%s]联系方式失败，跳过通知", entity.Id())
			return
		}
		email, name = venues[0].ContactEmail, venues[0].Name
	} else {
		suppliers, err := t.supplierDao.ListByIds([]string{entity.Id()})
		if err != nil || len(suppliers) == 0 {
			zap.S().Warnf("查询供应商[id=%s]联系方式失败，跳过通知", entity.Id())
			return
		}
		email, name = suppliers[0].ContactEmail, suppliers[0].Name
	}

	entityType, entityId := entity.Columns()
	payload := map[string]string{
		"email":      email,
		"entityName": name,
		"entityType": entityType,
		"entityId":   entityId,
		"eventId":    eventId,
	}
	if err := util.PostNotify(cfg.Notify.WebhookURL, payload, cfg.GetNotifyTimeout()); err != nil {
		zap.S().Warnf("发送标记通知给[%s]失败：%v", email, err)
	}
}
