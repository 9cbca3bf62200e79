package dao

import (
	"errors"

	"eventmarket/internal/data"
	"eventmarket/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SupplierDao struct {
	baseData *data.BaseData
}

func NewSupplierDao(data *data.BaseData) *SupplierDao {
	return &SupplierDao{
		baseData: data,
	}
}

// GetByCompanyId 供应商账号对应唯一一条supplier记录，不存在返回nil
func (d *SupplierDao) GetByCompanyId(companyId string) (*model.Supplier, error) {
	var supplier model.Supplier
	err := d.baseData.BizDB.Table(model.TableNameSupplier).Where("company_id = ?", companyId).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		zap.S().Errorf("查询公司[company_id=%s]的供应商失败：%v", companyId, err)
		return nil, err
	}
	return &supplier, nil
}

func (d *SupplierDao) ListByIds(supplierIds []string) ([]*model.Supplier, error) {
	if len(supplierIds) == 0 {
		return nil, nil
	}
	var suppliers []*model.Supplier
	err := d.baseData.BizDB.Table(model.TableNameSupplier).Where("id IN (?)", supplierIds).Find(&suppliers).Error
	if err != nil {
		zap.S().Errorf("批量查询供应商失败，数量：%d，错误：%v", len(supplierIds), err)
		return nil, err
	}
	return suppliers, nil
}
