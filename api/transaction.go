package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"expensebook/middleware"
	"expensebook/models"
	"expensebook/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// CreateTransactionRequest 创建交易请求
type CreateTransactionRequest struct {
	ExpenseUserID uint    `json:"user_id" binding:"required" example:"1"`
	Type          string  `json:"type" binding:"required" example:"income"`
	Amount        float64 `json:"amount" binding:"required" example:"500.00"`
	Date          string  `json:"date" example:"2024-01-15"`
}

// 接受的日期格式，按顺序尝试
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseTransactionDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 为指定联系人创建一条收入或支出记录。金额必须大于 0；日期可选，不传则为当前时间；联系人必须归属当前账号
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 201 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "联系人不存在"
// @Router /api/expense/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: user_id、type、amount 必填")
		return
	}

	req.Type = strings.TrimSpace(req.Type)
	if !models.IsValidTransactionType(req.Type) {
		BadRequest(c, "type 只能为 income 或 expense")
		return
	}
	if req.Amount <= 0 {
		BadRequest(c, "金额必须大于 0")
		return
	}

	// 日期可选，必须可解析
	date := time.Now()
	if req.Date != "" {
		parsed, err := parseTransactionDate(req.Date)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		date = parsed
	}

	// 校验目标联系人归属当前账号，归属不符与不存在同样返回 404
	if _, err := h.store.GetExpenseUser(req.ExpenseUserID, ownerID); err != nil {
		NotFound(c, "联系人不存在")
		return
	}

	transaction := models.Transaction{
		ExpenseUserID: req.ExpenseUserID,
		Type:          req.Type,
		Amount:        req.Amount,
		Date:          date,
	}

	if err := h.store.CreateTransaction(&transaction); err != nil {
		InternalError(c, SafeErrorMessage(err, "创建交易失败"))
		return
	}

	Created(c, "创建成功", transaction)
}

// ListByUser 获取某联系人的交易列表
// @Summary 获取某联系人的交易列表
// @Description 获取指定联系人的全部交易，按日期、ID升序。联系人必须归属当前账号
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "联系人ID"
// @Success 200 {object} Response{data=[]models.Transaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "联系人不存在"
// @Router /api/expense/transactions/user/{id} [get]
func (h *TransactionHandler) ListByUser(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if _, err := h.store.GetExpenseUser(uint(id), ownerID); err != nil {
		NotFound(c, "联系人不存在")
		return
	}

	list, err := h.store.ListTransactions(uint(id))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, list)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除单条交易记录，非本账号联系人名下的交易视同不存在
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "交易不存在"
// @Router /api/expense/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.store.DeleteTransaction(uint(id), ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "交易不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
