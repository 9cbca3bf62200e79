package model

import "time"

const TableNameEvent = "events"

// Event 仅用于通知卡片展示，本服务不管理其生命周期
type Event struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Date        time.Time `gorm:"column:date;not null" json:"date"`
	OrganizerId string    `gorm:"column:organizer_id;not null" json:"organizer_id"`
}

// TableName Event's table name
func (*Event) TableName() string {
	return TableNameEvent
}
