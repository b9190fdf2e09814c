package models

import (
	"time"

	"gorm.io/gorm"
)

// Account 登录账号模型
type Account struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Username  string         `json:"username" gorm:"size:50;not null"`
	Password  string         `json:"-" gorm:"column:password_hash;size:255;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Account) TableName() string {
	return "accounts"
}
