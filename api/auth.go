package api

import (
	"errors"

	"expensebook/config"
	"expensebook/middleware"
	"expensebook/models"
	"expensebook/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg   *config.Config
	store *store.Store
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config, s *store.Store) *AuthHandler {
	return &AuthHandler{cfg: cfg, store: s}
}

// SignupRequest 注册请求
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Username string `json:"username" binding:"required,min=1,max=50" example:"testuser"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password123"`
}

// SignupResponse 注册响应
type SignupResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string         `json:"token"`
	UserInfo SignupResponse `json:"user_info"`
}

// Signup 账号注册
// @Summary 账号注册
// @Description 创建新账号，密码至少 6 位，邮箱全局唯一
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body SignupRequest true "注册信息"
// @Success 201 {object} Response{data=SignupResponse} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 409 {object} Response "邮箱已被注册"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: 邮箱、用户名、密码必填，密码至少 6 位")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	account := models.Account{
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashedPassword),
	}

	if err := h.store.CreateAccount(&account); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			Conflict(c, "该邮箱已被注册")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建账号失败"))
		return
	}

	Created(c, "注册成功", SignupResponse{
		ID:       account.ID,
		Email:    account.Email,
		Username: account.Username,
	})
}

// Login 账号登录
// @Summary 账号登录
// @Description 使用邮箱和密码登录，返回 JWT token（2 小时有效）
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: 邮箱和密码必填")
		return
	}

	account, err := h.store.FindAccountByEmail(req.Email)
	if err != nil {
		Unauthorized(c, "邮箱或密码错误")
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "邮箱或密码错误")
		return
	}

	// 生成 token
	token, err := middleware.GenerateToken(account.ID, account.Email, account.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{
		Token: token,
		UserInfo: SignupResponse{
			ID:       account.ID,
			Email:    account.Email,
			Username: account.Username,
		},
	})
}

// Profile 获取当前登录信息
// @Summary 获取当前登录信息
// @Description 返回当前令牌中携带的账号信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.GetCurrentClaims(c)
	if claims == nil {
		Unauthorized(c, "未授权")
		return
	}

	Success(c, gin.H{
		"user": gin.H{
			"id":       claims.UserID,
			"email":    claims.Email,
			"username": claims.Username,
		},
	})
}
