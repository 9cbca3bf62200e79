package dao

import (
	"errors"

	"eventmarket/internal/data"
	"eventmarket/internal/model"
	modelquery "eventmarket/internal/model/query"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TagDao struct {
	baseData *data.BaseData
}

func NewTagDao(data *data.BaseData) *TagDao {
	return &TagDao{
		baseData: data,
	}
}

// Create 插入新标签，id为空时由客户端生成。
// 相同参数重复插入会产生两条记录，唯一约束待产品确认后再加
func (d *TagDao) Create(tag *model.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	if err := d.baseData.BizDB.Table(model.TableNameTag).Create(tag).Error; err != nil {
		zap.S().Errorf("插入标签[event_id=%s, entity_id=%s]到数据库失败：%v", tag.EventId, tag.TaggedEntityId, err)
		return err
	}
	return nil
}

// GetById 按主键查询，不存在时返回nil而非错误
func (d *TagDao) GetById(tagId string) (*model.Tag, error) {
	var tag model.Tag
	err := d.baseData.BizDB.Table(model.TableNameTag).Where("id = ?", tagId).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		zap.S().Errorf("查询标签[id=%s]失败：%v", tagId, err)
		return nil, err
	}
	return &tag, nil
}

// Confirm 将is_confirmed置为true，返回更新后的行；行不存在返回nil。
// 重复确认不再发更新，直接返回现值
func (d *TagDao) Confirm(tagId string) (*model.Tag, error) {
	tag, err := d.GetById(tagId)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	// 已确认的标签重复确认直接返回，mysql对同值更新报0行，不能当不存在
	if tag.IsConfirmed {
		return tag, nil
	}
	result := d.baseData.BizDB.Table(model.TableNameTag).Where("id = ?", tagId).
		Update("is_confirmed", true)
	if result.Error != nil {
		zap.S().Errorf("确认标签[id=%s]失败：%v", tagId, result.Error)
		return nil, result.Error
	}
	// 查询和更新之间行被删掉，按不存在处理
	if result.RowsAffected == 0 {
		return nil, nil
	}
	tag.IsConfirmed = true
	return tag, nil
}

// Delete 硬删除，拒绝即删行，不保留rejected状态
func (d *TagDao) Delete(tagId string) (bool, error) {
	result := d.baseData.BizDB.Table(model.TableNameTag).Where("id = ?", tagId).Delete(&model.Tag{})
	if result.Error != nil {
		zap.S().Errorf("删除标签[id=%s]失败：%v", tagId, result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (d *TagDao) TagListByCondition(condition *modelquery.TagQuery) ([]*model.Tag, error) {
	var tags []*model.Tag
	query := d.baseData.BizDB.Table(model.TableNameTag)

	if condition.Id != "" {
		query = query.Where("id = ?", condition.Id)
	}

	if condition.EventId != "" {
		query = query.Where("event_id = ?", condition.EventId)
	}

	if condition.EntityType != "" {
		query = query.Where("tagged_entity_type = ?", condition.EntityType)
	}

	if len(condition.EntityIds) > 0 {
		query = query.Where("tagged_entity_id IN (?)", condition.EntityIds)
	}

	if condition.OnlyUnconfirmed {
		query = query.Where("is_confirmed = ?", false)
	}

	if condition.OrderByCreated {
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}
