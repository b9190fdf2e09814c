package store

import (
	"time"

	"expensebook/models"
)

// 余额口径：收入之和减去支出之和，聚合在数据库内完成
// type 比较统一走 LOWER()，兼容历史数据中可能存在的大小写混杂
const balanceExpr = "COALESCE(SUM(CASE WHEN LOWER(t.type) = 'income' THEN t.amount WHEN LOWER(t.type) = 'expense' THEN -t.amount ELSE 0 END), 0)"

// UserBalance 联系人余额视图行
type UserBalance struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	CreatedAt        time.Time `json:"created_at"`
	Balance          float64   `json:"balance"`
	TransactionCount int64     `json:"transaction_count"`
}

// DashboardSummary 账号维度的汇总数据
type DashboardSummary struct {
	TotalBalance      float64 `json:"total_balance"`
	TotalUsers        int64   `json:"total_users"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalIncome       float64 `json:"total_income"`
	TotalExpenses     float64 `json:"total_expenses"`
}

// UsersWithBalance 列出某账号全部联系人及其余额、交易笔数
// LEFT JOIN 保证没有交易的联系人也出现在结果中（余额为 0），单条SQL完成聚合
func (s *Store) UsersWithBalance(ownerID uint) ([]UserBalance, error) {
	rows := make([]UserBalance, 0)
	err := s.db.Model(&models.ExpenseUser{}).
		Select("expense_users.id, expense_users.name, expense_users.phone, expense_users.created_at, "+
			balanceExpr+" AS balance, COUNT(t.id) AS transaction_count").
		Joins("LEFT JOIN transactions t ON t.user_id = expense_users.id").
		Where("expense_users.owner_id = ?", ownerID).
		Group("expense_users.id, expense_users.name, expense_users.phone, expense_users.created_at").
		Order("expense_users.id ASC").
		Scan(&rows).Error
	return rows, err
}

// Dashboard 汇总某账号的总余额、联系人数、交易笔数、总收入与总支出
// 没有任何联系人时返回全零，不会报错
func (s *Store) Dashboard(ownerID uint) (*DashboardSummary, error) {
	var summary DashboardSummary
	err := s.db.Model(&models.ExpenseUser{}).
		Select(balanceExpr+" AS total_balance, "+
			"COUNT(DISTINCT expense_users.id) AS total_users, "+
			"COUNT(t.id) AS total_transactions, "+
			"COALESCE(SUM(CASE WHEN LOWER(t.type) = 'income' THEN t.amount ELSE 0 END), 0) AS total_income, "+
			"COALESCE(SUM(CASE WHEN LOWER(t.type) = 'expense' THEN t.amount ELSE 0 END), 0) AS total_expenses").
		Joins("LEFT JOIN transactions t ON t.user_id = expense_users.id").
		Where("expense_users.owner_id = ?", ownerID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
