package query

type TagCreateReq struct {
	EventId          string `json:"eventId"`
	TaggedEntityId   string `json:"taggedEntityId"`
	TaggedEntityType string `json:"taggedEntityType"`
	TaggedBy         string `json:"taggedBy"`
}

type TagQuery struct {
	Id              string
	EventId         string
	EntityType      string
	EntityIds       []string
	OnlyUnconfirmed bool
	OrderByCreated  bool // created_at倒序
}
