package dao

import (
	"errors"

	"eventmarket/internal/data"
	"eventmarket/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProfileDao struct {
	baseData *data.BaseData
}

func NewProfileDao(data *data.BaseData) *ProfileDao {
	return &ProfileDao{
		baseData: data,
	}
}

// GetById 查询用户档案，不存在返回nil
func (d *ProfileDao) GetById(profileId string) (*model.Profile, error) {
	var profile model.Profile
	err := d.baseData.BizDB.Table(model.TableNameProfile).Where("id = ?", profileId).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		zap.S().Errorf("查询用户档案[id=%s]失败：%v", profileId, err)
		return nil, err
	}
	return &profile, nil
}
