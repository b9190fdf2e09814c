package router

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"expensebook/config"
	"expensebook/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T, mode string) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: mode},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: 2 * time.Hour},
	}
	config.GlobalConfig = cfg
	t.Cleanup(func() { config.GlobalConfig = nil })
	middleware.InitJWT(cfg)

	return gormDB
}

func TestSetupRouter_HealthCheck(t *testing.T) {
	db := setupTestRouter(t, "test")
	r := SetupRouter(config.GlobalConfig, db)

	for _, path := range []string{"/health", "/api/health"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code, "path=%s", path)
	}
}

func TestSetupRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	db := setupTestRouter(t, "test")
	r := SetupRouter(config.GlobalConfig, db)

	req := httptest.NewRequest("GET", "/api/expense/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
}

func TestSetupRouter_DebugEmailRoute(t *testing.T) {
	db := setupTestRouter(t, "debug")
	r := SetupRouter(config.GlobalConfig, db)

	// debug 模式下路由已注册，非法参数返回 400 而非 404
	req := httptest.NewRequest("POST", "/api/debug/test-email", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestSetupRouter_DebugRouteHiddenInRelease(t *testing.T) {
	db := setupTestRouter(t, "release")
	r := SetupRouter(config.GlobalConfig, db)

	req := httptest.NewRequest("POST", "/api/debug/test-email", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}
