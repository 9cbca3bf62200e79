package dto

import "time"

type Tag struct {
	ID               string    `json:"id"`
	EventId          string    `json:"event_id"`
	TaggedEntityId   string    `json:"tagged_entity_id"`
	TaggedEntityType string    `json:"tagged_entity_type"`
	TaggedBy         string    `json:"tagged_by"`
	IsConfirmed      bool      `json:"is_confirmed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TagWithName 标签加上被标记方的展示名
type TagWithName struct {
	Tag
	TaggedEntityName string `json:"tagged_entity_name"`
}

// TagNotification 通知卡片，带事件名称和日期
type TagNotification struct {
	Tag
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
}

type FeedSnapshot struct {
	Notifications []*TagNotification `json:"notifications"`
	Count         int                `json:"count"`
}
