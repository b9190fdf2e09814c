package models

import (
	"regexp"
	"time"
)

// phonePattern 联系人手机号：必须为 10 位数字
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ExpenseUser 记账联系人模型
// 同一账号下姓名、手机号均不可重复；不同账号之间互不影响
type ExpenseUser struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;uniqueIndex:uniq_owner_name,priority:1;uniqueIndex:uniq_owner_phone,priority:1"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex:uniq_owner_name,priority:2"`
	Phone     string    `json:"phone" gorm:"size:15;not null;uniqueIndex:uniq_owner_phone,priority:2"`
	CreatedAt time.Time `json:"created_at"`
	Owner     Account   `json:"-" gorm:"foreignKey:OwnerID"`
}

// TableName 设置表名
func (ExpenseUser) TableName() string {
	return "expense_users"
}

// IsValidPhone 校验手机号格式
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
