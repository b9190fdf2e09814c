package store

import (
	"errors"

	"expensebook/models"

	"gorm.io/gorm"
)

// CreateExpenseUser 创建联系人
// 同一账号下姓名、手机号各自唯一，重复时分别返回 ErrNameTaken / ErrPhoneTaken
func (s *Store) CreateExpenseUser(user *models.ExpenseUser) error {
	var existing models.ExpenseUser

	err := s.db.Where("owner_id = ? AND name = ?", user.OwnerID, user.Name).First(&existing).Error
	if err == nil {
		return ErrNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = s.db.Where("owner_id = ? AND phone = ?", user.OwnerID, user.Phone).First(&existing).Error
	if err == nil {
		return ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.db.Create(user).Error; err != nil {
		// 预检查和插入之间存在并发窗口，唯一索引冲突同样映射为重复错误
		switch {
		case isDuplicateKeyOn(err, "uniq_owner_name"):
			return ErrNameTaken
		case isDuplicateKeyOn(err, "uniq_owner_phone"):
			return ErrPhoneTaken
		}
		return err
	}
	return nil
}

// ListExpenseUsers 列出某账号的全部联系人，按ID升序
func (s *Store) ListExpenseUsers(ownerID uint) ([]models.ExpenseUser, error) {
	users := make([]models.ExpenseUser, 0)
	err := s.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&users).Error
	return users, err
}

// GetExpenseUser 按ID获取某账号的联系人，归属不符视同不存在
func (s *Store) GetExpenseUser(id, ownerID uint) (*models.ExpenseUser, error) {
	var user models.ExpenseUser
	if err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteExpenseUser 删除联系人及其全部交易
// 两次删除放在同一事务中执行，并发读取只会看到删除前或删除后的完整状态
func (s *Store) DeleteExpenseUser(id, ownerID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.ExpenseUser
		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&user).Error; err != nil {
			return err
		}

		// 先删交易再删联系人
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
