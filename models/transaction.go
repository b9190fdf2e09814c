package models

import (
	"time"
)

const (
	// TransactionTypeIncome 收入
	TransactionTypeIncome = "income"
	// TransactionTypeExpense 支出
	TransactionTypeExpense = "expense"
)

// Transaction 交易记录模型
// 每条记录归属于一个联系人，金额必须大于 0；删除联系人时级联删除其全部交易
type Transaction struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	ExpenseUserID uint        `json:"user_id" gorm:"column:user_id;index;not null"`
	Type          string      `json:"type" gorm:"size:10;not null;index"`
	Amount        float64     `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date          time.Time   `json:"date" gorm:"not null;index"`
	ExpenseUser   ExpenseUser `json:"-" gorm:"foreignKey:ExpenseUserID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType 校验交易类型是否为收入/支出
func IsValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
