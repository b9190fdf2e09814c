package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"expensebook/middleware"
	"expensebook/models"
	"expensebook/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store *store.Store
}

// NewExportHandler 创建导出处理器
func NewExportHandler(s *store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// 导出前校验联系人归属并取出其交易
func (h *ExportHandler) loadExportData(c *gin.Context) (*models.ExpenseUser, []models.Transaction, bool) {
	ownerID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		BadRequest(c, "请提供有效的 user_id")
		return nil, nil, false
	}

	user, err := h.store.GetExpenseUser(uint(id), ownerID)
	if err != nil {
		NotFound(c, "联系人不存在")
		return nil, nil, false
	}

	list, err := h.store.ListTransactions(user.ID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return nil, nil, false
	}

	return user, list, true
}

func balanceOf(list []models.Transaction) float64 {
	var balance float64
	for _, t := range list {
		if t.Type == models.TransactionTypeIncome {
			balance += t.Amount
		} else {
			balance -= t.Amount
		}
	}
	return balance
}

// ExportCSV 导出某联系人的交易为 CSV
// @Summary 导出交易记录为 CSV
// @Description 导出指定联系人的全部交易为 CSV 文件，末行附余额。联系人必须归属当前账号
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param user_id query int true "联系人ID"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "联系人不存在"
// @Router /api/expense/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, list, ok := h.loadExportData(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "类型", "金额", "日期"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, t := range list {
		row := []string{
			fmt.Sprintf("%d", t.ID),
			t.Type,
			fmt.Sprintf("%.2f", t.Amount),
			t.Date.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	// 末行写入余额
	if err := writer.Write([]string{"", "余额", fmt.Sprintf("%.2f", balanceOf(list)), ""}); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", user.Name)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出某联系人的交易为 Excel
// @Summary 导出交易记录为 Excel
// @Description 导出指定联系人的全部交易为 xlsx 文件，末行附余额。联系人必须归属当前账号
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param user_id query int true "联系人ID"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "联系人不存在"
// @Router /api/expense/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	user, list, ok := h.loadExportData(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "交易记录"
	index, err := f.NewSheet(sheet)
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "类型", "金额", "日期"}
	for i, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for rowIdx, t := range list {
		values := []interface{}{t.ID, t.Type, t.Amount, t.Date.Format("2006-01-02 15:04:05")}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// 末行写入余额
	balanceRow := len(list) + 2
	labelCell, _ := excelize.CoordinatesToCellName(2, balanceRow)
	valueCell, _ := excelize.CoordinatesToCellName(3, balanceRow)
	f.SetCellValue(sheet, labelCell, "余额")
	f.SetCellValue(sheet, valueCell, balanceOf(list))

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.xlsx", user.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
