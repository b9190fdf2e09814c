package api

import (
	"encoding/json"
	"testing"

	"expensebook/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDebugRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	authTestConfig()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDebugHandler()
	router.POST("/debug/test-email", h.TestEmail)

	return router, func() { config.GlobalConfig = nil }
}

func TestDebugHandler_TestEmail_ServiceDisabled(t *testing.T) {
	router, cleanup := setupDebugRouter(t)
	defer cleanup()

	w := postJSON(router, "/debug/test-email", `{"email":"test@example.com"}`)

	// 默认配置未启用邮件服务
	assert.Equal(t, 500, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "邮件服务未启用")
}

func TestDebugHandler_TestEmail_InvalidEmail(t *testing.T) {
	router, cleanup := setupDebugRouter(t)
	defer cleanup()

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`} {
		w := postJSON(router, "/debug/test-email", body)
		assert.Equal(t, 400, w.Code, "body=%s", body)
	}
}
