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

package config

import (
	"errors"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var SysConfig *Config

type Config struct {
	Server      ServerConfig `json:"server" yaml:"server"`
	BizDBConfig DBConfig     `json:"bizDB" yaml:"bizDB"`
	Redis       RedisConfig  `json:"redis" yaml:"redis"`
	Cache       Cache        `json:"cache" yaml:"cache"`
	Feed        Feed         `json:"feed" yaml:"feed"`
	Notify      Notify       `json:"notify" yaml:"notify"`
	Retry       Retry        `json:"retry" yaml:"retry"`
	Log         LogConfig    `json:"log" yaml:"log"`
}

type ServerConfig struct {
	Mode      string `json:"mode" yaml:"mode"`
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port"`
	Metrics   bool   `json:"metrics" yaml:"metrics"`
	QueueSize int    `json:"queueSize" yaml:"queueSize"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type Retry struct {
	Delay    int  `json:"delay" yaml:"delay" validate:"min=0,max=60"`
	Attempts uint `json:"attempts" yaml:"attempts" validate:"min=1,max=5"`
}

type LogConfig struct {
	Path       string `json:"path" yaml:"path"`
	MaxSize    int    `json:"maxSize" yaml:"maxSize"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAge     int    `json:"maxAge" yaml:"maxAge"`
}

type Cache struct {
	DefaultExpiration int `json:"defaultExpiration" yaml:"defaultExpiration"`
	CleanupInterval   int `json:"cleanupInterval" yaml:"cleanupInterval"`
}

// Feed 通知列表的刷新策略
type Feed struct {
	Policy         string `json:"policy" yaml:"policy" validate:"omitempty,oneof=immediate debounce"`
	DebounceMillis int    `json:"debounceMillis" yaml:"debounceMillis" validate:"min=0,max=60000"`
	Resync         Resync `json:"resync" yaml:"resync"`
}

// Resync 定时广播sync事件，兜底丢失的pubsub投递
type Resync struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Cron    string `json:"cron" yaml:"cron"`
}

type Notify struct {
	WebhookURL string `json:"webhookURL" yaml:"webhookURL"`
	Timeout    int    `json:"timeout" yaml:"timeout"`
}

type DBConfig struct {
	Type        string `yaml:"type"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Database    string `yaml:"database"`
	Timeout     string `yaml:"timeout"`
	MaxConn     int    `yaml:"maxConn"`
	MaxIdleConn int    `yaml:"maxIdleConn"`
}

func (c *Config) GetHost() string {
	return c.Server.Host
}

func (c *Config) EnableMetric() bool {
	return c.Server.Metrics
}

func (c *Config) SetDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8090
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.QueueSize == 0 {
		c.Server.QueueSize = 256
	}
	if c.Feed.Policy == "" {
		c.Feed.Policy = "immediate"
	}
	if c.Feed.DebounceMillis == 0 {
		c.Feed.DebounceMillis = 200
	}
	if c.Notify.Timeout == 0 {
		c.Notify.Timeout = 5
	}
}

func (c *Config) GetDefaultExpiration() time.Duration {
	if c.Cache.DefaultExpiration == 0 {
		c.Cache.DefaultExpiration = 5
	}
	return time.Duration(c.Cache.DefaultExpiration) * time.Minute
}

func (c *Config) GetCleanupInterval() time.Duration {
	if c.Cache.CleanupInterval == 0 {
		c.Cache.CleanupInterval = 10
	}
	return time.Duration(c.Cache.CleanupInterval) * time.Minute
}

func (c *Config) GetFeedPolicy() string {
	return c.Feed.Policy
}

func (c *Config) GetFeedDebounce() time.Duration {
	return time.Duration(c.Feed.DebounceMillis) * time.Millisecond
}

func (c *Config) GetEnableResync() bool {
	return c.Feed.Resync.Enabled
}

func (c *Config) GetResyncCron() string {
	return c.Feed.Resync.Cron
}

func (c *Config) GetNotifyTimeout() time.Duration {
	return time.Duration(c.Notify.Timeout) * time.Second
}

func Scan(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(b, &c)
	if err != nil {
		return nil, err
	}
	c.SetDefaults()

	validate := validator.New()
	err = validate.Struct(&c)
	if err != nil {
		var invalidValidationError *validator.InvalidValidationError
		if errors.As(err, &invalidValidationError) {
			zap.S().Errorf("Invalid validation error: %v\n", err)
		}
		return nil, err
	}
	SysConfig = &c // 设置全局配置变量

	marshal, err := yaml.Marshal(c)
	if err != nil {
		return nil, err
	}
	log.Info(string(marshal))
	return &c, nil
}
