package model

const TableNameVenue = "venues"

type Venue struct {
	ID           string `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:name;not null" json:"name"`
	CompanyId    string `gorm:"column:company_id;not null" json:"company_id"`
	ContactEmail string `gorm:"column:contact_email;not null" json:"contact_email"`
}

// TableName Venue's table name
func (*Venue) TableName() string {
	return TableNameVenue
}
