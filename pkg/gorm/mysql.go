package gorm

import (
	"fmt"
	"time"

	"eventmarket/pkg/config"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMysqlClient 创建mysql客户端，启动期允许重试，运行期的sql错误不做自动重试
func NewMysqlClient(dbConfig *config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local&timeout=%s",
		dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Database, dbConfig.Timeout)

	var dbClient *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			dbClient, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
				Logger:                 logger.Default.LogMode(logger.Silent),
				SkipDefaultTransaction: true,
			})
			return err
		},
		retry.Attempts(config.SysConfig.Retry.Attempts),
		retry.Delay(time.Duration(config.SysConfig.Retry.Delay)*time.Second),
		retry.OnRetry(func(n uint, err error) {
			zap.S().Warnf("连接mysql第%d次失败：%v", n+1, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := dbClient.DB()
	if err != nil {
		return nil, err
	}
	if dbConfig.MaxConn > 0 {
		sqlDB.SetMaxOpenConns(dbConfig.MaxConn)
	}
	if dbConfig.MaxIdleConn > 0 {
		sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConn)
	}
	return dbClient, nil
}
