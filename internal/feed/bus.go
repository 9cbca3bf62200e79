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

package feed

import (
	"context"
	"sync"

	"eventmarket/internal/data"
	"eventmarket/internal/model"
	"eventmarket/pkg/consts"
	"eventmarket/pkg/prom"

	"github.com/bytedance/sonic"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var FeedProvider = wire.NewSet(NewBus)

// ChangeEvent tags表的一次变更，kind为insert/update/delete/sync。
// 订阅端不做增量合并，收到任意事件后整体重新计算
type ChangeEvent struct {
	Kind string     `json:"kind"`
	Tag  *model.Tag `json:"tag,omitempty"`
}

// Bus 以redis pubsub承载tags表的变更广播，整表一个频道，不做按实体过滤
type Bus struct {
	rdb     *redis.Client
	channel string
}

func NewBus(baseData *data.BaseData) *Bus {
	return &Bus{
		rdb:     baseData.Rdb,
		channel: consts.TagChangeChannel,
	}
}

func (b *Bus) Publish(ctx context.Context, event *ChangeEvent) error {
	payload, err := sonic.Marshal(event)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		zap.S().Errorf("发布变更事件[kind=%s]失败：%v", event.Kind, err)
		return err
	}
	return nil
}

// Subscribe 每个打开的通知视图持有一条独立订阅，互不共享
func (b *Bus) Subscribe(ctx context.Context) *Subscription {
	pubsub := b.rdb.Subscribe(ctx, b.channel)
	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan *ChangeEvent, 16),
	}
	prom.FeedSubscriberGauge.Inc()
	go sub.loop(ctx)
	return sub
}

type Subscription struct {
	pubsub    *redis.PubSub
	events    chan *ChangeEvent
	closeOnce sync.Once
}

func (s *Subscription) Events() <-chan *ChangeEvent {
	return s.events
}

func (s *Subscription) loop(ctx context.Context) {
	defer close(s.events)
	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event ChangeEvent
			if err := sonic.Unmarshal([]byte(msg.Payload), &event); err != nil {
				zap.S().Errorf("解析变更事件失败：%v", err)
				continue
			}
			prom.ChangeEventCounter.WithLabelValues(event.Kind).Inc()
			select {
			case s.events <- &event:
			case <-ctx.Done():
				s.Close()
				return
			}
		}
	}
}

// Close 消费端视图关闭时释放订阅
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		_ = s.pubsub.Close()
		prom.FeedSubscriberGauge.Dec()
	})
}
