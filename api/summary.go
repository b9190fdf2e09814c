package api

import (
	"expensebook/middleware"
	"expensebook/store"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 余额/汇总处理器
type SummaryHandler struct {
	store *store.Store
}

// NewSummaryHandler 创建余额/汇总处理器
func NewSummaryHandler(s *store.Store) *SummaryHandler {
	return &SummaryHandler{store: s}
}

// UsersWithBalance 获取联系人余额列表
// @Summary 获取联系人余额列表
// @Description 返回当前账号每个联系人的余额（收入减支出）与交易笔数，无交易的联系人余额为 0，按ID升序
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]store.UserBalance} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/expense/users-with-balance [get]
func (h *SummaryHandler) UsersWithBalance(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)

	rows, err := h.store.UsersWithBalance(ownerID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, rows)
}

// Dashboard 获取仪表盘汇总
// @Summary 获取仪表盘汇总
// @Description 返回当前账号的总余额、联系人数、交易笔数、总收入与总支出；没有任何联系人时各项均为 0
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=store.DashboardSummary} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/expense/dashboard [get]
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	ownerID := middleware.GetCurrentUserID(c)

	summary, err := h.store.Dashboard(ownerID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, summary)
}
