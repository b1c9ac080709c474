package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		generate := payrolls.Group("")
		if rdb != nil {
			// Generate dilindungi idempotency key: retry client tidak boleh
			// menghasilkan slip ganda
			generate.Use(middleware.Idempotency(rdb))
		}
		generate.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.Generate)

		payrolls.POST("/:id/verify", middleware.RBACAuthorize(rbacService, "payroll", "verify"), handler.Verify)
		payrolls.POST("/:id/pay", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.MarkAsPaid)
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAllDetails)
		payrolls.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByPeriod)
		payrolls.GET("/employee/:employeeId/history", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetHistory)
	}
}
