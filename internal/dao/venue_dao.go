package dao

import (
	"eventmarket/internal/data"
	"eventmarket/internal/model"

	"go.uber.org/zap"
)

type VenueDao struct {
	baseData *data.BaseData
}

func NewVenueDao(data *data.BaseData) *VenueDao {
	return &VenueDao{
		baseData: data,
	}
}

// ListByCompanyId 场馆经理名下的全部场馆
func (d *VenueDao) ListByCompanyId(companyId string) ([]*model.Venue, error) {
	var venues []*model.Venue
	err := d.baseData.BizDB.Table(model.TableNameVenue).Where("company_id = ?", companyId).Find(&venues).Error
	if err != nil {
		zap.S().Errorf("查询公司[company_id=%s]名下场馆失败：%v", companyId, err)
		return nil, err
	}
	return venues, nil
}

func (d *VenueDao) ListByIds(venueIds []string) ([]*model.Venue, error) {
	if len(venueIds) == 0 {
		return nil, nil
	}
	var venues []*model.Venue
	err := d.baseData.BizDB.Table(model.TableNameVenue).Where("id IN (?)", venueIds).Find(&venues).Error
	if err != nil {
		zap.S().Errorf("批量查询场馆失败，数量：%d，错误：%v", len(venueIds), err)
		return nil, err
	}
	return venues, nil
}
