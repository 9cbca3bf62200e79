package model

import (
	"fmt"

	"eventmarket/pkg/consts"
	myerr "eventmarket/pkg/error"
)

// TaggedEntity 被标记方的内部表示，venue和supplier二选一，
// 只在dao边界转换成tagged_entity_type/tagged_entity_id两列
type TaggedEntity struct {
	kind consts.EntityType
	id   string
}

func VenueEntity(id string) TaggedEntity {
	return TaggedEntity{kind: consts.EntityTypeVenue, id: id}
}

func SupplierEntity(id string) TaggedEntity {
	return TaggedEntity{kind: consts.EntityTypeSupplier, id: id}
}

// ParseTaggedEntity 从扁平两列还原，未知类型或空id直接拒绝
func ParseTaggedEntity(entityType, entityId string) (TaggedEntity, error) {
	kind, ok := consts.EntityTypesMapping[entityType]
	if !ok {
		return TaggedEntity{}, myerr.BadRequest(fmt.Sprintf("未知的实体类型：%s", entityType))
	}
	if entityId == "" {
		return TaggedEntity{}, myerr.BadRequest("实体id不能为空")
	}
	return TaggedEntity{kind: kind, id: entityId}, nil
}

func (e TaggedEntity) Kind() consts.EntityType {
	return e.kind
}

func (e TaggedEntity) Id() string {
	return e.id
}

// Columns 转换成存储层的两列表示
func (e TaggedEntity) Columns() (string, string) {
	return string(e.kind), e.id
}

func (e TaggedEntity) IsVenue() bool {
	return e.kind == consts.EntityTypeVenue
}
