package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSummaryRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	s, mock, cleanup := setupMockStore(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))

	h := NewSummaryHandler(s)
	router.GET("/users-with-balance", h.UsersWithBalance)
	router.GET("/dashboard", h.Dashboard)

	return router, mock, cleanup
}

func TestSummaryHandler_UsersWithBalance(t *testing.T) {
	router, mock, cleanup := setupSummaryRouter(t)
	defer cleanup()

	now := time.Now()
	// 聚合在单条SQL内完成，无交易的联系人余额为 0
	mock.ExpectQuery("SELECT .* FROM `expense_users` LEFT JOIN transactions").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "created_at", "balance", "transaction_count"}).
			AddRow(1, "Asha", "9876543210", now, 379.5, 3).
			AddRow(2, "Bina", "1112223333", now, 0.0, 0))

	req := httptest.NewRequest("GET", "/users-with-balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := resp["data"].([]interface{})
	require.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Asha", first["name"])
	assert.Equal(t, 379.5, first["balance"])
	assert.Equal(t, float64(3), first["transaction_count"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, 0.0, second["balance"])
	assert.Equal(t, float64(0), second["transaction_count"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_UsersWithBalance_Empty(t *testing.T) {
	router, mock, cleanup := setupSummaryRouter(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expense_users` LEFT JOIN transactions").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "created_at", "balance", "transaction_count"}))

	req := httptest.NewRequest("GET", "/users-with-balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_Dashboard(t *testing.T) {
	router, mock, cleanup := setupSummaryRouter(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expense_users` LEFT JOIN transactions").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"total_balance", "total_users", "total_transactions", "total_income", "total_expenses"}).
			AddRow(379.5, 2, 3, 500.0, 120.5))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 379.5, data["total_balance"])
	assert.Equal(t, float64(2), data["total_users"])
	assert.Equal(t, float64(3), data["total_transactions"])
	assert.Equal(t, 500.0, data["total_income"])
	assert.Equal(t, 120.5, data["total_expenses"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_Dashboard_NoData(t *testing.T) {
	router, mock, cleanup := setupSummaryRouter(t)
	defer cleanup()

	// 没有任何联系人时各项均为 0
	mock.ExpectQuery("SELECT .* FROM `expense_users` LEFT JOIN transactions").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"total_balance", "total_users", "total_transactions", "total_income", "total_expenses"}).
			AddRow(0.0, 0, 0, 0.0, 0.0))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["total_balance"])
	assert.Equal(t, float64(0), data["total_users"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_Dashboard_RepeatedRead(t *testing.T) {
	router, mock, cleanup := setupSummaryRouter(t)
	defer cleanup()

	// 连续两次读取返回同样的结果
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT .* FROM `expense_users` LEFT JOIN transactions").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"total_balance", "total_users", "total_transactions", "total_income", "total_expenses"}).
				AddRow(100.0, 1, 2, 150.0, 50.0))
	}

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}
