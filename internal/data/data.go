// Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http:www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventmarket/pkg/config"
	"eventmarket/pkg/consts"
	myorm "eventmarket/pkg/gorm"

	"github.com/avast/retry-go"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var BaseDataProvider = wire.NewSet(NewBaseData)

type BaseData struct {
	BizDB *gorm.DB
	Rdb   *redis.Client
}

func initDB(dbConfig *config.DBConfig) (*gorm.DB, error) {
	var dbClient *gorm.DB
	var err error
	switch dbConfig.Type {
	case consts.DB_MYSQL:
		dbClient, err = myorm.NewMysqlClient(dbConfig)
	default:
		err = errors.New(fmt.Sprintf("unknown db type: %s", dbConfig.Type))
	}

	return dbClient, err
}

func initRedis(redisConfig *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	err := retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			return client.Ping(ctx).Err()
		},
		retry.Attempts(config.SysConfig.Retry.Attempts),
		retry.Delay(time.Duration(config.SysConfig.Retry.Delay)*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func NewBaseData(config *config.Config) (*BaseData, func(), error) {
	bizClient, err := initDB(&config.BizDBConfig)
	if err != nil {
		return nil, nil, err
	}

	rdb, err := initRedis(&config.Redis)
	if err != nil {
		bizDb, _ := bizClient.DB()
		_ = bizDb.Close()
		return nil, nil, err
	}

	cleanup := func() {
		bizDb, _ := bizClient.DB()
		_ = bizDb.Close()
		_ = rdb.Close()
		zap.S().Info("datasource cleanup ok")
	}

	var debug = config.Server.Mode != "release"

	if debug {
		bizClient = bizClient.Debug()
	}
	return &BaseData{
		BizDB: bizClient,
		Rdb:   rdb,
	}, cleanup, nil
}
