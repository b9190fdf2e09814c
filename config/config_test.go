package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal database error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "expensebook", cfg.Database.DBName)
	// JWT 默认 2 小时过期
	assert.Equal(t, 2, cfg.JWT.ExpireHours)
	assert.Equal(t, 2*60*60, int(cfg.JWT.ExpireTime.Seconds()))
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfig_ExternalOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	content := "server:\n  port: \":9090\"\njwt:\n  expire_hours: 6\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 6, cfg.JWT.ExpireHours)
	// 未覆盖的项沿用默认值
	assert.Equal(t, "debug", cfg.Server.Mode)
}

func TestLoadConfig_ReleaseRequiresSecret(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	dir := t.TempDir()
	path := filepath.Join(dir, "release.yaml")
	content := "server:\n  mode: \"release\"\njwt:\n  secret: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestLoadConfig_ReleaseWithoutSecretKey(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	// 配置中完全不提 jwt.secret，release 模式同样拒绝启动
	dir := t.TempDir()
	path := filepath.Join(dir, "release.yaml")
	content := "server:\n  mode: \"release\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestLoadConfig_DebugSecretFallback(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	// debug 模式未配置密钥时回退到内置开发密钥
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, devJWTSecret, cfg.JWT.Secret)
}

func TestLoadConfig_ReleaseWithExplicitSecret(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	dir := t.TempDir()
	path := filepath.Join(dir, "release.yaml")
	content := "server:\n  mode: \"release\"\njwt:\n  secret: \"prod-secret\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "prod-secret", cfg.JWT.Secret)
}
