package model

const TableNameSupplier = "suppliers"

type Supplier struct {
	ID           string `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name;not null" json:"name"`
	CompanyId    string `gorm:"column:company_id;not null" json:"company_id"`
	ContactEmail string `gorm:"column:contact_email;not null" json:"contact_email"`
}

// TableName Supplier's table name
func (*Supplier) TableName() string {
	return TableNameSupplier
}
