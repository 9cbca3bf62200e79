package model

import "time"

const TableNameTag = "tags"

type Tag struct {
	ID               string    `gorm:"column:id;primaryKey" json:"id"`
	EventId          string    `gorm:"column:event_id;not null" json:"event_id"`
	TaggedEntityId   string    `gorm:"column:tagged_entity_id;not null" json:"tagged_entity_id"`
	TaggedEntityType string    `gorm:"column:tagged_entity_type;not null" json:"tagged_entity_type"`
	TaggedBy         string    `gorm:"column:tagged_by;not null" json:"tagged_by"`
	IsConfirmed      bool      `gorm:"column:is_confirmed;not null" json:"is_confirmed"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName Tag's table name
func (*Tag) TableName() string {
	return TableNameTag
}
