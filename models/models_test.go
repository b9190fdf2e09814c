package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.True(t, IsValidPhone("0000000000"))

	// 位数不对
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("12345678901"))
	// 含非数字字符
	assert.False(t, IsValidPhone("98765-4321"))
	assert.False(t, IsValidPhone("987654321a"))
	assert.False(t, IsValidPhone(" 987654321"))
	assert.False(t, IsValidPhone(""))
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))

	assert.False(t, IsValidTransactionType("Income"))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
}

func TestPasswordReset_GenerateResetCode(t *testing.T) {
	code, err := GenerateResetCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)

	digitRegex := regexp.MustCompile(`^\d{6}$`)
	assert.True(t, digitRegex.MatchString(code), "code should be 6 digits")
}

func TestPasswordReset_IsExpired(t *testing.T) {
	now := time.Now()

	p := &PasswordReset{ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, p.IsExpired())

	p2 := &PasswordReset{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, p2.IsExpired())
}

func TestPasswordReset_IsValid(t *testing.T) {
	now := time.Now()

	// 有效
	p := &PasswordReset{Used: false, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, p.IsValid())

	// 无效：已使用
	p2 := &PasswordReset{Used: true, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, p2.IsValid())

	// 无效：已过期
	p3 := &PasswordReset{Used: false, ExpiresAt: now.Add(-time.Hour)}
	assert.False(t, p3.IsValid())
}
