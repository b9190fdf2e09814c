package api

import (
	"time"

	"expensebook/config"
	"expensebook/models"
	"expensebook/service"
	"expensebook/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// PasswordResetHandler 密码重置处理器
type PasswordResetHandler struct {
	store        *store.Store
	emailService *service.EmailService
}

// NewPasswordResetHandler 创建密码重置处理器
func NewPasswordResetHandler(cfg *config.Config, s *store.Store) *PasswordResetHandler {
	return &PasswordResetHandler{
		store:        s,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RequestResetRequest 请求密码重置
type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// RequestReset 请求密码重置（发送验证码）
// @Summary 请求密码重置
// @Description 向邮箱发送 6 位重置验证码，10 分钟有效。无论邮箱是否注册均返回成功，避免探测
// @Tags 密码重置
// @Accept json
// @Produce json
// @Param request body RequestResetRequest true "密码重置请求"
// @Success 200 {object} Response "验证码已发送"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/password/request-reset [post]
func (h *PasswordResetHandler) RequestReset(c *gin.Context) {
	var req RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请输入有效的邮箱地址")
		return
	}

	account, err := h.store.FindAccountByEmail(req.Email)
	if err != nil {
		// 为了安全，即使账号不存在也返回成功
		SuccessWithMessage(c, "如果该邮箱已注册，您将收到密码重置验证码", nil)
		return
	}

	// 检查是否有未使用的有效验证码（防止频繁发送）
	if existing, err := h.store.FindActivePasswordReset(account.ID); err == nil {
		// 距离上次发送不到 1 分钟，拒绝发送
		if time.Since(existing.CreatedAt) < time.Minute {
			Error(c, 429, "请求过于频繁，请稍后再试")
			return
		}
		// 使旧验证码失效
		_ = h.store.MarkPasswordResetUsed(existing)
	}

	code, err := models.GenerateResetCode()
	if err != nil {
		InternalError(c, "生成验证码失败")
		return
	}

	reset := models.PasswordReset{
		AccountID: account.ID,
		Code:      code,
		Email:     req.Email,
		ExpiresAt: time.Now().Add(10 * time.Minute), // 10分钟有效期
	}

	if err := h.store.CreatePasswordReset(&reset); err != nil {
		InternalError(c, SafeErrorMessage(err, "创建重置验证码失败"))
		return
	}

	if err := h.emailService.SendPasswordResetEmail(req.Email, account.Username, code); err != nil {
		_ = h.store.DeletePasswordReset(&reset)
		InternalError(c, SafeErrorMessage(err, "邮件发送失败"))
		return
	}

	SuccessWithMessage(c, "密码重置验证码已发送，请查收邮件", nil)
}

// VerifyResetCodeRequest 验证重置验证码
type VerifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
	Code  string `json:"code" binding:"required,len=6" example:"123456"`
}

// VerifyResetCode 验证重置验证码
// @Summary 验证重置验证码
// @Description 验证密码重置验证码是否正确
// @Tags 密码重置
// @Accept json
// @Produce json
// @Param request body VerifyResetCodeRequest true "验证请求"
// @Success 200 {object} Response "验证成功"
// @Failure 400 {object} Response "验证码错误或已过期"
// @Router /api/password/verify-code [post]
func (h *PasswordResetHandler) VerifyResetCode(c *gin.Context) {
	var req VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误")
		return
	}

	reset, err := h.store.FindPasswordResetByCode(req.Email, req.Code)
	if err != nil {
		BadRequest(c, "验证码错误")
		return
	}

	if !reset.IsValid() {
		if reset.Used {
			BadRequest(c, "验证码已被使用")
		} else {
			BadRequest(c, "验证码已过期，请重新获取")
		}
		return
	}

	SuccessWithMessage(c, "验证成功", nil)
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email" example:"test@example.com"`
	Code        string `json:"code" binding:"required,len=6" example:"123456"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72" example:"newpassword123"`
}

// ResetPassword 重置密码
// @Summary 重置密码
// @Description 使用验证码重置密码，成功后该账号所有未使用的验证码一并失效
// @Tags 密码重置
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "重置密码请求"
// @Success 200 {object} Response "密码重置成功"
// @Failure 400 {object} Response "验证码错误或已过期"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/password/reset [post]
func (h *PasswordResetHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误")
		return
	}

	reset, err := h.store.FindPasswordResetByCode(req.Email, req.Code)
	if err != nil {
		BadRequest(c, "验证码错误")
		return
	}

	if !reset.IsValid() {
		if reset.Used {
			BadRequest(c, "验证码已被使用")
		} else {
			BadRequest(c, "验证码已过期，请重新获取")
		}
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	if err := h.store.UpdateAccountPassword(reset.AccountID, string(hashedPassword)); err != nil {
		InternalError(c, SafeErrorMessage(err, "更新密码失败"))
		return
	}

	// 使该账号所有未使用的验证码失效
	_ = h.store.InvalidatePasswordResets(reset.AccountID)

	SuccessWithMessage(c, "密码重置成功，请使用新密码登录", nil)
}
