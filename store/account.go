package store

import (
	"errors"

	"expensebook/models"

	"gorm.io/gorm"
)

// CreateAccount 注册新账号，邮箱重复返回 ErrEmailTaken
func (s *Store) CreateAccount(account *models.Account) error {
	var existing models.Account
	err := s.db.Where("email = ?", account.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.db.Create(account).Error; err != nil {
		// 并发注册穿过预检查时由邮箱唯一索引兜底
		if isDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindAccountByEmail 按邮箱查找账号
func (s *Store) FindAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindAccountByID 按ID查找账号
func (s *Store) FindAccountByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccountPassword 更新账号密码哈希
func (s *Store) UpdateAccountPassword(accountID uint, passwordHash string) error {
	return s.db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("password_hash", passwordHash).Error
}
