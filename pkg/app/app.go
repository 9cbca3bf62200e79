package app

import (
	"context"
	"time"
)

type Info struct {
	id        string
	name      string
	version   string
	startTime string
}

func NewInfo(id, name, version string) *Info {
	return &Info{
		id:        id,
		name:      name,
		version:   version,
		startTime: time.Now().Format("2006-01-02 15:04:05"),
	}
}

func (i *Info) ID() string        { return i.id }
func (i *Info) Name() string      { return i.name }
func (i *Info) Version() string   { return i.version }
func (i *Info) StartTime() string { return i.startTime }

type appKey struct{}

func NewContext(ctx context.Context, info *Info) context.Context {
	return context.WithValue(ctx, appKey{}, info)
}

func FromContext(ctx context.Context) (*Info, bool) {
	info, ok := ctx.Value(appKey{}).(*Info)
	return info, ok
}
