package store

import (
	"expensebook/models"
	"time"
)

// CreatePasswordReset 保存密码重置验证码
func (s *Store) CreatePasswordReset(reset *models.PasswordReset) error {
	return s.db.Create(reset).Error
}

// FindActivePasswordReset 查找某账号未使用且未过期的验证码
func (s *Store) FindActivePasswordReset(accountID uint) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := s.db.Where("account_id = ? AND used = ? AND expires_at > ?",
		accountID, false, time.Now()).First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// FindPasswordResetByCode 按邮箱和验证码查找重置记录
func (s *Store) FindPasswordResetByCode(email, code string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := s.db.Where("email = ? AND code = ?", email, code).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

// MarkPasswordResetUsed 将单条重置记录标记为已使用
func (s *Store) MarkPasswordResetUsed(reset *models.PasswordReset) error {
	return s.db.Model(reset).Update("used", true).Error
}

// InvalidatePasswordResets 使某账号所有未使用的验证码失效
func (s *Store) InvalidatePasswordResets(accountID uint) error {
	return s.db.Model(&models.PasswordReset{}).
		Where("account_id = ? AND used = ?", accountID, false).
		Update("used", true).Error
}

// DeletePasswordReset 删除重置记录（邮件发送失败时回滚用）
func (s *Store) DeletePasswordReset(reset *models.PasswordReset) error {
	return s.db.Delete(reset).Error
}
