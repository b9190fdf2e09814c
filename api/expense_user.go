package api

import (
	"errors"
	"strconv"
	"strings"

	"expensebook/middleware"
	"expensebook/models"
	"expensebook/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseUserHandler 联系人处理器
type ExpenseUserHandler struct {
	store *store.Store
}

// NewExpenseUserHandler 创建联系人处理器
func NewExpenseUserHandler(s *store.Store) *ExpenseUserHandler {
	return &ExpenseUserHandler{store: s}
}

// CreateExpenseUserRequest 创建联系人请求
type CreateExpenseUserRequest struct {
	Name  string `json:"name" binding:"required" example:"Asha"`
	Phone string `json:"phone" binding:"required" example:"9876543210"`
}

// Create 创建联系人
// @Summary 创建联系人
// @Description 创建一个记账联系人，手机号必须为 10 位数字，同一账号下姓名和手机号均不可重复
// @Tags 联系人
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseUserRequest true "联系人信息"
// @Success 201 {object} Response{data=models.ExpenseUser} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 409 {object} Response "姓名或手机号重复"
// @Router /api/expense/users [post]
func (h *ExpenseUserHandler) Create(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)

	var req CreateExpenseUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: 姓名和手机号必填")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" {
		BadRequest(c, "姓名不能为空")
		return
	}
	if !models.IsValidPhone(req.Phone) {
		BadRequest(c, "手机号必须为 10 位数字")
		return
	}

	user := models.ExpenseUser{
		OwnerID: ownerID,
		Name:    req.Name,
		Phone:   req.Phone,
	}

	if err := h.store.CreateExpenseUser(&user); err != nil {
		switch {
		case errors.Is(err, store.ErrNameTaken):
			Conflict(c, "该姓名已存在")
		case errors.Is(err, store.ErrPhoneTaken):
			Conflict(c, "该手机号已存在")
		default:
			InternalError(c, SafeErrorMessage(err, "创建联系人失败"))
		}
		return
	}

	Created(c, "创建成功", user)
}

// List 获取联系人列表
// @Summary 获取联系人列表
// @Description 获取当前账号的全部联系人，按ID升序
// @Tags 联系人
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.ExpenseUser} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/expense/users [get]
func (h *ExpenseUserHandler) List(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)

	users, err := h.store.ListExpenseUsers(ownerID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, users)
}

// Get 获取单个联系人
// @Summary 获取单个联系人
// @Description 根据ID获取联系人详情，非本账号的联系人视同不存在
// @Tags 联系人
// @Produce json
// @Security BearerAuth
// @Param id path int true "联系人ID"
// @Success 200 {object} Response{data=models.ExpenseUser} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "联系人不存在"
// @Router /api/expense/users/{id} [get]
func (h *ExpenseUserHandler) Get(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	user, err := h.store.GetExpenseUser(uint(id), ownerID)
	if err != nil {
		NotFound(c, "联系人不存在")
		return
	}

	Success(c, user)
}

// Delete 删除联系人
// @Summary 删除联系人
// @Description 删除联系人及其全部交易记录，两者在同一事务中完成
// @Tags 联系人
// @Produce json
// @Security BearerAuth
// @Param id path int true "联系人ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "联系人不存在"
// @Router /api/expense/users/{id} [delete]
func (h *ExpenseUserHandler) Delete(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.store.DeleteExpenseUser(uint(id), ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "联系人不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "联系人及其交易记录已删除", nil)
}
