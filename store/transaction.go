package store

import (
	"expensebook/models"
)

// CreateTransaction 创建交易记录
// 调用方需先通过 GetExpenseUser 确认目标联系人归属当前账号
func (s *Store) CreateTransaction(t *models.Transaction) error {
	return s.db.Create(t).Error
}

// ListTransactions 列出某联系人的全部交易，按日期、ID升序
// 调用方需先通过 GetExpenseUser 确认归属
func (s *Store) ListTransactions(expenseUserID uint) ([]models.Transaction, error) {
	list := make([]models.Transaction, 0)
	err := s.db.Where("user_id = ?", expenseUserID).
		Order("date ASC, id ASC").
		Find(&list).Error
	return list, err
}

// GetTransaction 按ID获取交易，通过联系人表校验归属账号，归属不符视同不存在
func (s *Store) GetTransaction(id, ownerID uint) (*models.Transaction, error) {
	var t models.Transaction
	err := s.db.Model(&models.Transaction{}).
		Joins("JOIN expense_users ON expense_users.id = transactions.user_id").
		Where("transactions.id = ? AND expense_users.owner_id = ?", id, ownerID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction 删除单条交易，归属不符返回 gorm.ErrRecordNotFound
func (s *Store) DeleteTransaction(id, ownerID uint) error {
	t, err := s.GetTransaction(id, ownerID)
	if err != nil {
		return err
	}
	return s.db.Delete(&models.Transaction{}, t.ID).Error
}
