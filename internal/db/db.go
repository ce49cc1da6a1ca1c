package db

import (
	"net/url"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 连接托管数据库并执行迁移与内容播种。
func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	return Prepare(DB)
}

// Prepare 为核心模型建表并播种默认内容,测试可对任意连接复用。
func Prepare(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&Session{},
		&Event{},
		&PageDuration{},
		&Vote{},
		&Page{},
		&ProfileContact{},
	); err != nil {
		return err
	}

	return seedContent(gdb)
}

// DSN 将访问密钥并入数据源地址:URL 形式时写入密码段,
// keyword/value 形式时追加 password 参数。
func DSN(rawURL, key string) string {
	if strings.Contains(rawURL, "://") {
		if parsed, err := url.Parse(rawURL); err == nil {
			user := "postgres"
			if parsed.User != nil {
				user = parsed.User.Username()
			}
			parsed.User = url.UserPassword(user, key)
			return parsed.String()
		}
	}
	return rawURL + " password=" + key
}
