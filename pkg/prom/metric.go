package prom

import (
	"eventmarket/pkg/consts"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// TagMutationCounter 标签写操作计数，action取值tag/confirm/untag
	TagMutationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eventmarket_tag_mutations_total",
		Help: "Total number of tag mutations.",
	}, []string{consts.PromAction})

	// FeedResolveCounter 通知列表解析次数，按角色区分
	FeedResolveCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eventmarket_feed_resolutions_total",
		Help: "Total number of notification feed resolutions.",
	}, []string{consts.PromRole})

	// ChangeEventCounter 变更事件投递计数
	ChangeEventCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eventmarket_change_events_total",
		Help: "Total number of change feed events delivered.",
	}, []string{consts.PromAction})

	// FeedSubscriberGauge 当前存活的订阅数
	FeedSubscriberGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eventmarket_feed_subscribers",
		Help: "Current number of live feed subscriptions.",
	})
)

func init() {
	prometheus.MustRegister(TagMutationCounter, FeedResolveCounter, ChangeEventCounter, FeedSubscriberGauge)
}
