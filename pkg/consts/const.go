//  Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http:www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package consts

// 被标记实体类型
type EntityType string

const (
	EntityTypeVenue    EntityType = EntityType("venue")
	EntityTypeSupplier            = EntityType("supplier")
)

var EntityTypesMapping = map[string]EntityType{
	"venue":    EntityTypeVenue,
	"supplier": EntityTypeSupplier,
}

// 用户角色
const (
	RoleAdmin        = "admin"
	RoleVenueManager = "venue_manager"
	RoleSupplier     = "supplier"
	RoleEventPlanner = "event_planner"
	RoleUser         = "user"
)

const (
	// 支持的数据库
	DB_MYSQL = "mysql"
)

// 变更事件类型
const (
	ChangeInsert = "insert"
	ChangeUpdate = "update"
	ChangeDelete = "delete"
	ChangeSync   = "sync"
)

// tags表变更事件的redis频道
const TagChangeChannel = "eventmarket:tags:changes"

// 订阅端重新计算通知列表的策略
const (
	FeedPolicyImmediate = "immediate"
	FeedPolicyDebounce  = "debounce"
)

const HeaderProfileId = "X-Profile-Id"

// SSE长连接路由，不占用请求队列槽位
const RouteNotificationStream = "/api/v1/notifications/stream"

const PromAction = "action"
const PromRole = "role"
