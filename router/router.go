package router

import (
	"time"

	"expensebook/api"
	"expensebook/config"
	_ "expensebook/docs"
	"expensebook/middleware"
	"expensebook/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	s := store.New(db)

	authHandler := api.NewAuthHandler(cfg, s)
	passwordResetHandler := api.NewPasswordResetHandler(cfg, s)
	expenseUserHandler := api.NewExpenseUserHandler(s)
	transactionHandler := api.NewTransactionHandler(s)
	summaryHandler := api.NewSummaryHandler(s)
	exportHandler := api.NewExportHandler(s)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	healthCheck := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	r.GET("/health", healthCheck)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", healthCheck)

		// 认证相关路由（无需登录）
		apiGroup.POST("/signup", authHandler.Signup)
		apiGroup.POST("/login", middleware.RateLimit(10, time.Minute), authHandler.Login)

		// 调试接口，仅在 debug 模式注册
		if cfg.Server.Mode != "release" {
			debugHandler := api.NewDebugHandler()
			apiGroup.POST("/debug/test-email", debugHandler.TestEmail)
		}

		// 密码重置（无需登录）
		password := apiGroup.Group("/password")
		password.Use(middleware.RateLimit(10, time.Minute))
		{
			password.POST("/request-reset", passwordResetHandler.RequestReset)
			password.POST("/verify-code", passwordResetHandler.VerifyResetCode)
			password.POST("/reset", passwordResetHandler.ResetPassword)
		}

		// 需要 JWT 认证的路由
		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/profile", authHandler.Profile)

			expense := authorized.Group("/expense")
			{
				// 联系人
				expense.POST("/users", expenseUserHandler.Create)
				expense.GET("/users", expenseUserHandler.List)
				expense.GET("/users/:id", expenseUserHandler.Get)
				expense.DELETE("/users/:id", expenseUserHandler.Delete)

				// 交易记录
				expense.POST("/transactions", transactionHandler.Create)
				expense.DELETE("/transactions/:id", transactionHandler.Delete)
				expense.GET("/transactions/user/:id", transactionHandler.ListByUser)

				// 余额与汇总
				expense.GET("/users-with-balance", summaryHandler.UsersWithBalance)
				expense.GET("/dashboard", summaryHandler.Dashboard)

				// 导出
				expense.GET("/export/csv", exportHandler.ExportCSV)
				expense.GET("/export/excel", exportHandler.ExportExcel)
			}
		}
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
