package api

import (
	"expensebook/config"
	"expensebook/service"

	"github.com/gin-gonic/gin"
)

// DebugHandler 调试接口处理器，仅在 debug 模式注册
type DebugHandler struct{}

// NewDebugHandler 创建调试接口处理器
func NewDebugHandler() *DebugHandler {
	return &DebugHandler{}
}

// TestEmailRequest 测试邮件请求
type TestEmailRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// TestEmail 发送测试邮件，用于验证邮件配置
// @Summary 发送测试邮件
// @Description 向指定邮箱发送一封测试邮件，用于验证 SMTP 配置。仅 debug 模式可用
// @Tags 调试
// @Accept json
// @Produce json
// @Param request body TestEmailRequest true "目标邮箱"
// @Success 200 {object} Response "测试邮件已发送"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "邮件发送失败"
// @Router /api/debug/test-email [post]
func (h *DebugHandler) TestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请输入有效的邮箱地址")
		return
	}

	emailService := service.NewEmailService(&config.GetConfig().Email)
	if err := emailService.SendTestEmail(req.Email); err != nil {
		InternalError(c, SafeErrorMessage(err, "测试邮件发送失败"))
		return
	}

	SuccessWithMessage(c, "测试邮件已发送，请查收", nil)
}
