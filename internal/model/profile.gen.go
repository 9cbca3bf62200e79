package model

const TableNameProfile = "profiles"

type Profile struct {
	ID    string `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name;not null" json:"name"`
	Email string `gorm:"column:email;not null" json:"email"`
	Role  string `gorm:"column:role;not null" json:"role"`
}

// TableName Profile's table name
func (*Profile) TableName() string {
	return TableNameProfile
}
