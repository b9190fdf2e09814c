// Package store 封装所有数据库访问
// 涉及联系人/交易的查询一律带上归属账号条件，归属不符与不存在同样返回 gorm.ErrRecordNotFound
package store

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = errors.New("该邮箱已被注册")
	// ErrNameTaken 同一账号下联系人姓名重复
	ErrNameTaken = errors.New("该姓名已存在")
	// ErrPhoneTaken 同一账号下联系人手机号重复
	ErrPhoneTaken = errors.New("该手机号已存在")
)

// Store 数据访问层
type Store struct {
	db *gorm.DB
}

// New 创建数据访问层
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB 返回底层数据库句柄
func (s *Store) DB() *gorm.DB {
	return s.db
}

// isDuplicateKey 判断是否为 MySQL 唯一索引冲突（错误码 1062）
// 并发写入穿过应用层预检查时由唯一索引兜底
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// isDuplicateKeyOn 判断唯一索引冲突是否落在指定索引上
func isDuplicateKeyOn(err error, index string) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return false
	}
	return strings.Contains(mysqlErr.Message, index)
}
